// Package logging configures the process-wide logrus logger from the
// settings in the user config and the command line.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output string // stderr, stdout, or a file path
}

// Init applies cfg to the standard logrus logger. Empty fields keep their
// current value. The returned closer releases a log file, if one was opened.
func Init(cfg Config) (io.Closer, error) {
	var closer io.Closer = nopCloser{}

	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return closer, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		log.SetLevel(level)
	}

	switch strings.ToLower(cfg.Format) {
	case "":
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return closer, fmt.Errorf("invalid log format %q (want text or json)", cfg.Format)
	}

	switch strings.ToLower(cfg.Output) {
	case "":
	case "stderr":
		log.SetOutput(os.Stderr)
	case "stdout":
		log.SetOutput(os.Stdout)
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return closer, fmt.Errorf("opening log file %q: %w", cfg.Output, err)
		}
		log.SetOutput(f)
		closer = f
	}

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
