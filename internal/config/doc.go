// Package config defines the settings of the Adhan daemon and CLI and
// provides helpers to load, validate and save them in YAML format.
//
// Values from a .env file and ADHAN_* environment variables override the
// file so the daemon can be configured from a service manager.
package config
