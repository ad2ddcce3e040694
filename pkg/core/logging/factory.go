// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured foundation loggers
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "text", "json" or "console" (default: text)
	Format string

	// File receives the output instead of stderr when set
	File string

	// Verbose forces debug level
	Verbose bool

	// Additional outputs (besides stderr or File)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger. The returned closer releases the
// log file, if one was opened.
func NewLogger(cfg LoggerConfig) (*mfinlog.Logger, io.Closer, error) {
	level, err := mfinlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, mfinerror.Wrap(err, "invalid log level").
			WithCode(mfinerror.CodeInvalidConfig).
			WithDetail("level", cfg.Level)
	}
	if cfg.Verbose {
		level = mfinlog.LevelDebug
	}

	format := mfinlog.FormatText
	if cfg.Format != "" {
		if format, err = mfinlog.ParseFormat(cfg.Format); err != nil {
			return nil, nil, mfinerror.Wrap(err, "invalid log format").
				WithCode(mfinerror.CodeInvalidConfig).
				WithDetail("format", cfg.Format)
		}
	}

	// Build output writer
	var output io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		output, closer = f, f
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := mfinlog.NewWithConfig(mfinlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
	return logger, closer, nil
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mfinlog.Logger {
	logger, _, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		return mfinlog.Discard()
	}
	return logger
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, mfinerror.Wrap(err, "cannot create log directory").
				WithCode(mfinerror.CodeFileError).
				WithDetail("path", dir)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, mfinerror.Wrap(err, "cannot open log file").
			WithCode(mfinerror.CodeFileError).
			WithDetail("path", path)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
