package daemon

import "time"

const (
	// startTimeout bounds the start hooks: store open, broker connect, listeners.
	startTimeout = 30 * time.Second
	// stopTimeout bounds graceful shutdown.
	stopTimeout = 15 * time.Second
	// metricsReadHeaderTimeout protects the metrics endpoint from slow clients.
	metricsReadHeaderTimeout = 5 * time.Second
)

// Options controls the adhand process.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress overrides the control API address from the settings.
	ListenAddress string
	// StorePath overrides the schedule store location from the settings.
	StorePath string
	// ConfigureLogging applies the log settings to the global logger.
	ConfigureLogging bool
	// WatchDebounce overrides the delay between a store change and reconciliation.
	WatchDebounce time.Duration
}
