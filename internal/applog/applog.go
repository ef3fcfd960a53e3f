// Package applog holds the process-wide diagnostics logger. It is silent
// until Init is called with enabled set; user-facing output does not go
// through it.
package applog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.Nop()
)

// Init routes diagnostics to w. A nil w means stderr.
func Init(w io.Writer, enabled bool) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		logger = zerolog.Nop()
		return
	}
	if w == nil {
		w = os.Stderr
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	logger = zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()
}

func get() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return &logger
}

func Warnf(format string, args ...any) {
	get().Warn().Msgf(format, args...)
}

// Run logs the start of a generation run.
func Run(variant, outDir string, count int) {
	get().Info().
		Str("variant", variant).
		Str("out_dir", outDir).
		Int("icons", count).
		Msg("run_start")
}

// Icon logs one rendered and written icon.
func Icon(variant, path string, size, bytes int, elapsed time.Duration) {
	get().Info().
		Str("variant", variant).
		Str("path", path).
		Int("size", size).
		Int("bytes", bytes).
		Float64("ms", float64(elapsed.Microseconds())/1000).
		Msg("icon_written")
}

// Error logs a fatal error before the process exits.
func Error(err error) {
	get().Error().Err(err).Msg("failed")
}
