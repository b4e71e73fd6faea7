// Package playback owns the single Adhan playback session.
//
// Controller reacts to fired alarms: it stops and releases whatever is
// playing, starts the requested recording when sound is enabled and always
// shows the prayer notification. Player failures leave the controller idle
// and never prevent the notification.
package playback
