package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger; usable before Init with logrus defaults
var Log = logrus.New()

// Config selects level, format and destination
type Config struct {
	Level  string // panic..trace, default info
	Format string // "json" or "text"
	File   string // empty for stderr
}

// ConfigFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_FILE
func ConfigFromEnv() Config {
	cfg := Config{Level: "info"}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.Level = lvl
	}
	cfg.Format = strings.ToLower(os.Getenv("LOG_FORMAT"))
	cfg.File = os.Getenv("LOG_FILE")
	return cfg
}

// Init configures Log; the returned closer releases a log file if one was opened
func Init(cfg Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if cfg.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: cfg.File != "",
		})
	}

	if cfg.File == "" {
		Log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", cfg.File)
	}
	Log.SetOutput(f)
	return f, nil
}

// Discard silences Log; used by hosts that own the terminal and by tests
func Discard() {
	Log.SetOutput(io.Discard)
}

// Nop returns an independent logger that drops everything
func Nop() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
