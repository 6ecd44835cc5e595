package sink

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/logex-dev/logex/internal/config"
)

// Set owns the writers installed for one logger handle.
type Set struct {
	Logger zerolog.Logger
	file   *lumberjack.Logger
}

// Build constructs the rotating file sink (and optional console sink)
// described by the settings and returns an engine logger wired to them.
func Build(s config.Settings) (*Set, error) {
	fileLevel, err := config.ParseLevel(s.Level)
	if err != nil {
		return nil, err
	}
	format, err := config.ParseFormat(s.Format)
	if err != nil {
		return nil, err
	}
	maxSize, err := s.MaxSizeMB()
	if err != nil {
		return nil, err
	}
	maxAge, err := s.MaxAgeDays()
	if err != nil {
		return nil, err
	}

	path, err := filepath.Abs(s.File)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve log file %s", s.File)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "ensure log directory for %s", path)
	}

	file := &lumberjack.Logger{
		Filename: path,
		MaxSize:  maxSize,
		MaxAge:   maxAge,
		Compress: s.Compress(),
	}

	var fileWriter io.Writer = file
	if format == "text" {
		fileWriter = zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
	}

	writers := []io.Writer{&levelWriter{Writer: fileWriter, min: fileLevel}}
	minLevel := fileLevel

	if s.ConsoleEnabled {
		consoleLevel, err := config.ParseLevel(s.ConsoleLevel)
		if err != nil {
			return nil, err
		}
		console := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    !consoleColor(s.ConsoleColorize),
			TimeFormat: time.RFC3339,
		}
		writers = append(writers, &levelWriter{Writer: console, min: consoleLevel})
		if consoleLevel < minLevel {
			minLevel = consoleLevel
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(minLevel).
		With().Timestamp().Str("logger", s.Name).Logger()

	return &Set{Logger: logger, file: file}, nil
}

// Close releases the open log file. Rotated-file bookkeeping stays with the
// engine.
func (s *Set) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

// Path returns the absolute location of the active log file.
func (s *Set) Path() string {
	if s == nil || s.file == nil {
		return ""
	}
	return s.file.Filename
}

// Rotate forces the file sink to roll over immediately.
func (s *Set) Rotate() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Rotate()
}

func consoleColor(colorize *bool) bool {
	if colorize != nil {
		return *colorize
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
