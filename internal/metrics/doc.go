// Package metrics records Adhan scheduling and playback activity.
//
// Recorder is the interface the services depend on; NoopRecorder is used when
// metrics are disabled and PrometheusRecorder exports counters through a
// Prometheus registry.
package metrics
