// Package adhan contains core domain types for Adhan alarms.
//
// It defines ScheduledAlarm (a pending wake-up for one prayer), Payload (the
// opaque event carried by a wake-up), PlaybackSession (the single playback
// state) and the host capability interfaces Timer, Notifier and Player that
// the services depend on.
package adhan
