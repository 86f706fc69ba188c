// apps/go-term/internal/logging/logging.go
//
// zerolog setup. The global logger from github.com/rs/zerolog/log is used
// everywhere; this package only decides its level and sink:
//   - Console: human-readable output on stderr for one-shot commands.
//   - File: JSON lines appended to a file while the TUI owns the terminal.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLevel parses level and applies it globally. Unknown levels fall back
// to info and are reported.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}

// Console routes the global logger to w (usually os.Stderr).
func Console(w io.Writer) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// File routes the global logger to path, creating parent directories.
// The returned closer restores the previous logger.
func File(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	prev := log.Logger
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return &fileSink{f: f, prev: prev}, nil
}

type fileSink struct {
	f    *os.File
	prev zerolog.Logger
}

func (s *fileSink) Close() error {
	log.Logger = s.prev
	return s.f.Close()
}
