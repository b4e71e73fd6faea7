// Package timer implements the wake-up timer on top of gocron one-time jobs.
//
// Every request is a single job keyed by its request key; requesting the same key
// again replaces the job. Fired payloads are delivered in order through Events.
package timer
