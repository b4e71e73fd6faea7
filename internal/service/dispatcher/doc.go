// Package dispatcher is the entry point for delivered wake-ups and for the
// restore that follows a host restart.
package dispatcher
