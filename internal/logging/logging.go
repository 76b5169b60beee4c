package logging

import (
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = newDefault()
)

func newDefault() zerolog.Logger {
	writer := os.Stderr
	isTTY := isatty.IsTerminal(writer.Fd()) || isatty.IsCygwinTerminal(writer.Fd())
	out := zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(writer),
		TimeFormat: "15:04:05",
		NoColor:    !isTTY,
	}
	return zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Logger returns the module-wide logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetOutput replaces the destination of the module-wide logger,
// keeping console formatting.
func SetOutput(w *os.File) {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}).
		With().Timestamp().Logger().Level(log.GetLevel())
}

// SetLevel adjusts the minimum level the module-wide logger emits.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(level)
}

// Disable silences the module-wide logger entirely.
func Disable() {
	SetLevel(zerolog.Disabled)
}
