// Package client implements the adhanctl commands.
//
// Each command connects to the daemon control API, performs one operation
// and prints a short human-readable result. With Wait set, commands retry
// until the daemon becomes reachable.
package client
