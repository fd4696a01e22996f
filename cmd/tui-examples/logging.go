package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const maxLogSize = 10 << 20

// setupLogging opens path for appending when debug is set, rotating it aside
// once it grows past maxLogSize. Without debug the logger discards and the
// returned file is nil.
func setupLogging(debug bool, path string, level log.Level) (*log.Logger, *os.File, error) {
	if !debug {
		return log.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), nil, fmt.Errorf("create log dir: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		// Rename keeps the old log next to the new one
		if err := os.Rename(path, rotatedName(path, time.Now())); err != nil {
			return log.New(io.Discard), nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), nil, fmt.Errorf("open log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	return logger, f, nil
}

// rotatedName turns dir/name.log into dir/name-20060102-150405.log
func rotatedName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405"), ext)
}
