// Package schedule persists scheduled alarms so that they survive restarts.
//
// FileRepository keeps the schedule in a protobuf JSON file that operators may
// edit by hand; BadgerRepository keeps one record per prayer in a badger database.
package schedule
