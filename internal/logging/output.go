// internal/logging/output.go
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/colebrumley/scripttools/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output returns the writer diagnostics go to: stderr, plus a rotated log
// file when one is configured. The returned closer releases the file.
func Output(cfg config.LoggingConfig, stderr io.Writer) (io.Writer, io.Closer, error) {
	if stderr == nil {
		stderr = os.Stderr
	}
	if cfg.File == "" {
		return stderr, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return stderr, nopCloser{}, fmt.Errorf("creating log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.CompressLogs(),
	}
	return io.MultiWriter(stderr, rotator), rotator, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
