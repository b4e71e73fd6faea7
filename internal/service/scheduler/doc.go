// Package scheduler maps prayer names to pending wake-up requests.
//
// Every prayer owns one request key for the lifetime of the Scheduler, so
// scheduling the same prayer again replaces its pending wake-up instead of
// adding a second one.
package scheduler
