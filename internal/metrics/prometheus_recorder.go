package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adhan"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	scheduled            *prom.CounterVec
	cancelled            prom.Counter
	fired                *prom.CounterVec
	playbackFailures     *prom.CounterVec
	notificationFailures prom.Counter
	playing              prom.Gauge
}

// NewPrometheusRecorder constructs and registers the metrics. A nil registry gets a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		scheduled: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "alarms_scheduled_total",
			Help:      "Wake-ups requested, by scheduling mode",
		}, []string{"mode"}),
		cancelled: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "alarms_cancelled_total",
			Help:      "Wake-ups cancelled",
		}),
		fired: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "alarms_fired_total",
			Help:      "Delivered wake-ups, by dispatch result",
		}, []string{"result"}),
		playbackFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "playback_failures_total",
			Help:      "Player failures, by stage",
		}, []string{"stage"}),
		notificationFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Notifications that could not be shown",
		}),
		playing: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "playback_active",
			Help:      "1 while an Adhan is playing",
		}),
	}

	reg.MustRegister(
		pr.scheduled,
		pr.cancelled,
		pr.fired,
		pr.playbackFailures,
		pr.notificationFailures,
		pr.playing,
	)

	return pr
}

func (p *PrometheusRecorder) IncScheduled(mode ScheduleMode) {
	if p == nil {
		return
	}
	p.scheduled.WithLabelValues(string(mode)).Inc()
}

func (p *PrometheusRecorder) IncCancelled() {
	if p == nil {
		return
	}
	p.cancelled.Inc()
}

func (p *PrometheusRecorder) IncFired(result FireResult) {
	if p == nil {
		return
	}
	p.fired.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncPlaybackFailure(stage string) {
	if p == nil {
		return
	}
	p.playbackFailures.WithLabelValues(stage).Inc()
}

func (p *PrometheusRecorder) IncNotificationFailure() {
	if p == nil {
		return
	}
	p.notificationFailures.Inc()
}

func (p *PrometheusRecorder) SetPlaying(playing bool) {
	if p == nil {
		return
	}

	if playing {
		p.playing.Set(1)
		return
	}

	p.playing.Set(0)
}

// HTTPHandler serves the metrics of the registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
