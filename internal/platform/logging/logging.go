// Package logging builds the zerolog loggers shared by registry processes.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/assetregistry/internal/platform/config"
	"github.com/rs/zerolog"
)

// Format selects the log encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Config controls logger construction.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadConfig reads logging configuration from the environment. On a parse
// failure the defaults are returned alongside the error.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{Level: "info", Format: string(FormatConsole)}, err
	}
	return cfg, nil
}

// New returns a logger for service configured from the environment, writing
// to stderr. A configuration that cannot be read is reported on the returned
// logger.
func New(service string) zerolog.Logger {
	cfg, err := LoadConfig()
	logger := NewWithWriter(service, cfg, os.Stderr)
	if err != nil {
		logger.Warn().Err(err).Msg("logging config; using defaults")
	}
	return logger
}

// NewWithWriter returns a logger for service writing to out. Unknown level or
// format values fall back to info and console, with a warning.
func NewWithWriter(service string, cfg Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level, levelOK := ParseLevel(cfg.Level)
	if !levelOK {
		level = zerolog.InfoLevel
	}

	format := Format(strings.ToLower(strings.TrimSpace(cfg.Format)))
	formatOK := format == "" || format == FormatConsole || format == FormatJSON

	var w io.Writer = out
	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}
	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	if !levelOK && strings.TrimSpace(cfg.Level) != "" {
		logger.Warn().Str("level", cfg.Level).Msg("unknown log level; using info")
	}
	if !formatOK {
		logger.Warn().Str("format", cfg.Format).Msg("unknown log format; using console")
	}
	return logger
}

// Nop returns a disabled logger, used when a component is constructed
// without one.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
