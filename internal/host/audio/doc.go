// Package audio plays Adhan recordings through an external player process and
// resolves asset references against the assets directory.
package audio
