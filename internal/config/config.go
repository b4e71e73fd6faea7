package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by adhand and adhanctl.
type Config struct {
	// ServerAddress is the gRPC address of the daemon control API.
	ServerAddress string `yaml:"server_addr"`
	// MetricsAddress enables the Prometheus endpoint when set.
	MetricsAddress string `yaml:"metrics_addr"`
	// Timeout is the duration for RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogEncoding is "console" or "json".
	LogEncoding string `yaml:"log_encoding"`
	// Store configures the persisted schedule store.
	Store StoreConfig `yaml:"store"`
	// Timer configures the wake-up timer.
	Timer TimerConfig `yaml:"timer"`
	// Notification configures the text of Adhan notifications.
	Notification NotificationConfig `yaml:"notification"`
	// Notifier selects and configures notification backends.
	Notifier NotifierConfig `yaml:"notifier"`
	// Player configures audio playback.
	Player PlayerConfig `yaml:"player"`
}

// StoreConfig selects the schedule store backend.
type StoreConfig struct {
	// Backend is "file" or "badger".
	Backend string `yaml:"backend"`
	// Path is the JSON file or the badger directory.
	Path string `yaml:"path"`
	// Watch reloads the schedule when the file store changes on disk.
	Watch bool `yaml:"watch"`
}

// TimerConfig controls exact and best-effort wake-ups.
type TimerConfig struct {
	// ExactAllowed permits exact wake-ups. When false every request degrades to best-effort.
	ExactAllowed bool `yaml:"exact_allowed"`
	// BestEffortWindow is the granularity best-effort wake-ups are aligned to.
	BestEffortWindow time.Duration `yaml:"best_effort_window"`
}

// NotificationConfig holds the notification texts and channel.
type NotificationConfig struct {
	// TitlePrefix precedes the prayer name in the title.
	TitlePrefix string `yaml:"title_prefix"`
	// FallbackLabel replaces the prayer name when it is missing.
	FallbackLabel string `yaml:"fallback_label"`
	// Body is the notification text.
	Body string `yaml:"body"`
	// TapTarget is handed to the notifier as the action opened on tap.
	TapTarget string `yaml:"tap_target"`
}

// NotifierConfig selects notification backends.
type NotifierConfig struct {
	// Backends lists enabled backends: log, dbus, mqtt.
	Backends []string `yaml:"backends"`
	// AppName is reported to desktop notification servers.
	AppName string `yaml:"app_name"`
	// MQTT configures the mqtt backend.
	MQTT MQTTConfig `yaml:"mqtt"`
}

// MQTTConfig configures the MQTT notifier.
type MQTTConfig struct {
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	TopicPrefix string `yaml:"topic_prefix"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
}

// PlayerConfig configures the external audio player.
type PlayerConfig struct {
	// Command is the player invocation; "%s" is replaced by the asset path.
	Command []string `yaml:"command"`
	// AssetsDir holds the Adhan recordings.
	AssetsDir string `yaml:"assets_dir"`
	// DefaultAsset is played when a wake-up does not name one.
	DefaultAsset string `yaml:"default_asset"`
	// Extensions are tried, in order, when an asset reference has none.
	Extensions []string `yaml:"extensions"`
}

// Store backends.
const (
	StoreBackendFile   = "file"
	StoreBackendBadger = "badger"
)

// Notifier backends.
const (
	NotifierLog  = "log"
	NotifierDBus = "dbus"
	NotifierMQTT = "mqtt"
)

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "adhan-alarm-settings.yaml"

	// DefaultStoreFilename is the default schedule store file.
	DefaultStoreFilename = "adhan-alarm-schedule.json"

	// DefaultServerAddress is the default control API address.
	DefaultServerAddress = "127.0.0.1:50061"

	// DefaultTimeout is the default duration for RPC calls.
	DefaultTimeout = 5 * time.Second

	// DefaultBestEffortWindow aligns best-effort wake-ups to whole minutes.
	DefaultBestEffortWindow = time.Minute

	// DefaultAssetsDir is where Adhan recordings are looked up.
	DefaultAssetsDir = "assets/adhan"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownStoreBackend is returned for unsupported store backends.
	errUnknownStoreBackend = errors.New("unknown store backend")
	// errUnknownNotifier is returned for unsupported notifier backends.
	errUnknownNotifier = errors.New("unknown notifier backend")
	// errBrokerRequired is returned when the mqtt backend has no broker.
	errBrokerRequired = errors.New("mqtt broker must be provided")
	// errPlayerCommandRequired is returned for an empty player command.
	errPlayerCommandRequired = errors.New("player command must not be empty")
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := new(Config)
	cfg.Timer.ExactAllowed = true
	applyDefaults(cfg)

	return cfg
}

// Load reads configuration from the provided path, applies environment overrides and validates it.
// A missing file at the default path yields the default configuration.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Keep defaults.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and checks the settings for required fields and formatting.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	applyDefaults(cfg)

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	if cfg.MetricsAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", cfg.MetricsAddress); err != nil {
			return fmt.Errorf("invalid metrics address: %w", err)
		}
	}

	switch cfg.Store.Backend {
	case StoreBackendFile, StoreBackendBadger:
	default:
		return fmt.Errorf("%w: %q", errUnknownStoreBackend, cfg.Store.Backend)
	}

	for _, backend := range cfg.Notifier.Backends {
		if !slices.Contains([]string{NotifierLog, NotifierDBus, NotifierMQTT}, backend) {
			return fmt.Errorf("%w: %q", errUnknownNotifier, backend)
		}
	}

	if slices.Contains(cfg.Notifier.Backends, NotifierMQTT) {
		if cfg.Notifier.MQTT.Broker == "" {
			return errBrokerRequired
		}

		if _, err := url.Parse(cfg.Notifier.MQTT.Broker); err != nil {
			return fmt.Errorf("invalid mqtt broker: %w", err)
		}
	}

	if len(cfg.Player.Command) == 0 {
		return errPlayerCommandRequired
	}

	return nil
}

// applyDefaults sets every empty field to its default.
func applyDefaults(cfg *Config) {
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = DefaultServerAddress
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogEncoding == "" {
		cfg.LogEncoding = "console"
	}

	if cfg.Store.Backend == "" {
		cfg.Store.Backend = StoreBackendFile
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStoreFilename
	}

	if cfg.Timer.BestEffortWindow <= 0 {
		cfg.Timer.BestEffortWindow = DefaultBestEffortWindow
	}

	if cfg.Notification.TitlePrefix == "" {
		cfg.Notification.TitlePrefix = "أذان"
	}

	if cfg.Notification.FallbackLabel == "" {
		cfg.Notification.FallbackLabel = "الصلاة"
	}

	if cfg.Notification.Body == "" {
		cfg.Notification.Body = "حان وقت الصلاة"
	}

	if cfg.Notification.TapTarget == "" {
		cfg.Notification.TapTarget = "adhan://open"
	}

	if len(cfg.Notifier.Backends) == 0 {
		cfg.Notifier.Backends = []string{NotifierLog}
	}

	if cfg.Notifier.AppName == "" {
		cfg.Notifier.AppName = "Adhan"
	}

	if cfg.Notifier.MQTT.ClientID == "" {
		cfg.Notifier.MQTT.ClientID = "adhand"
	}

	if cfg.Notifier.MQTT.TopicPrefix == "" {
		cfg.Notifier.MQTT.TopicPrefix = "adhan"
	}

	if len(cfg.Player.Command) == 0 {
		cfg.Player.Command = []string{"paplay", "%s"}
	}

	if cfg.Player.AssetsDir == "" {
		cfg.Player.AssetsDir = DefaultAssetsDir
	}

	if cfg.Player.DefaultAsset == "" {
		cfg.Player.DefaultAsset = "adhan_default"
	}

	if len(cfg.Player.Extensions) == 0 {
		cfg.Player.Extensions = []string{".mp3", ".ogg", ".wav"}
	}
}
