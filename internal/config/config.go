// Package config provides centralized configuration management for the
// importer and the dashboard server. Settings come from environment
// variables with sensible defaults and are validated on startup to
// fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Import  ImportConfig
	Logging LoggingConfig
}

// ServerConfig holds dashboard HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 4000)
	Port int `env:"SERVER_PORT" default:"4000"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout per request (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// ImportConfig holds the input and output locations of the import
// pipeline. The store and report are overwritten in place each run, so
// concurrent runs against the same paths race; run one import at a
// time.
type ImportConfig struct {
	// Source is the delimited input file (default: customers.csv)
	Source string `env:"IMPORT_SOURCE" envAlt:"INPUT_CSV" default:"customers.csv"`

	// StorePath is the customer store document (default: database.json)
	StorePath string `env:"IMPORT_STORE_PATH" envAlt:"OUTPUT_JSON" default:"database.json"`

	// ReportPath is the error report file (default: error_report.csv)
	ReportPath string `env:"IMPORT_REPORT_PATH" envAlt:"ERROR_LOG" default:"error_report.csv"`

	// HistoryPath is the run history log; empty disables it
	// (default: import_history.json)
	HistoryPath string `env:"IMPORT_HISTORY_PATH" default:"import_history.json"`

	// MappingPath is an optional column-mapping YAML file; empty uses
	// the built-in mapping
	MappingPath string `env:"IMPORT_MAPPING_PATH"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
