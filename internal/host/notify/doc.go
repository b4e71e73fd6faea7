// Package notify provides notifier backends for Adhan notifications: freedesktop
// desktop notifications over D-Bus, MQTT for remote screens, and the log.
package notify
