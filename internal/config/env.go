package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvFile is the dotenv file loaded before environment overrides are applied.
const EnvFile = ".env"

// Environment variables that override file settings.
const (
	EnvServerAddress = "ADHAN_SERVER_ADDR"
	EnvMetricsAddr   = "ADHAN_METRICS_ADDR"
	EnvLogLevel      = "ADHAN_LOG_LEVEL"
	EnvStoreBackend  = "ADHAN_STORE_BACKEND"
	EnvStorePath     = "ADHAN_STORE_PATH"
	EnvExactAllowed  = "ADHAN_EXACT_ALLOWED"
	EnvAssetsDir     = "ADHAN_ASSETS_DIR"
	EnvNotifiers     = "ADHAN_NOTIFIERS"
	EnvMQTTBroker    = "ADHAN_MQTT_BROKER"
	EnvMQTTPassword  = "ADHAN_MQTT_PASSWORD"
	EnvTimeout       = "ADHAN_TIMEOUT"
)

// ApplyEnv loads .env (when present) and applies ADHAN_* overrides to cfg.
// Variables already set in the process environment win over .env values.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", EnvFile, err)
	}

	setString(&cfg.ServerAddress, EnvServerAddress)
	setString(&cfg.MetricsAddress, EnvMetricsAddr)
	setString(&cfg.LogLevel, EnvLogLevel)
	setString(&cfg.Store.Backend, EnvStoreBackend)
	setString(&cfg.Store.Path, EnvStorePath)
	setString(&cfg.Player.AssetsDir, EnvAssetsDir)
	setString(&cfg.Notifier.MQTT.Broker, EnvMQTTBroker)
	setString(&cfg.Notifier.MQTT.Password, EnvMQTTPassword)

	if v, ok := os.LookupEnv(EnvNotifiers); ok && v != "" {
		cfg.Notifier.Backends = splitList(v)
	}

	if v, ok := os.LookupEnv(EnvExactAllowed); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvExactAllowed, err)
		}

		cfg.Timer.ExactAllowed = b
	}

	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}

		cfg.Timeout = d
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}

	return result
}
