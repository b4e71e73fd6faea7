// Package daemon runs adhand: it wires the schedule store, the host capabilities
// and the alarm core together, restores the schedule at start, serves the control
// API and tears playback down on shutdown.
package daemon
