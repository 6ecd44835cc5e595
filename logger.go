package logex

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/logex-dev/logex/internal/config"
	"github.com/logex-dev/logex/internal/sink"
)

// Logger is a configured logging handle. Handles are cached per name by the
// registry; With returns lightweight children sharing the same sinks.
type Logger struct {
	core   *core
	fields []field
}

type field struct {
	key   string
	value any
}

// core is the shared, reconfigurable state behind a handle and its children.
type core struct {
	name string

	mu         sync.RWMutex
	set        *sink.Set
	settings   config.Settings
	configPath string
}

func newLogger(name, configPath string, settings config.Settings, set *sink.Set) *Logger {
	return &Logger{core: &core{
		name:       name,
		set:        set,
		settings:   settings,
		configPath: configPath,
	}}
}

// Settings is a snapshot of a handle's effective configuration.
type Settings struct {
	Name           string
	File           string
	Level          string
	Rotation       string
	Retention      string
	Compression    string
	Format         string
	ConsoleEnabled bool
	ConsoleLevel   string
}

// Name returns the registry name of the handle.
func (l *Logger) Name() string { return l.core.name }

// Settings returns a snapshot of the handle's effective configuration.
func (l *Logger) Settings() Settings {
	l.core.mu.RLock()
	s := l.core.settings
	l.core.mu.RUnlock()
	return Settings{
		Name:           s.Name,
		File:           s.File,
		Level:          s.Level,
		Rotation:       s.Rotation,
		Retention:      s.Retention,
		Compression:    s.Compression,
		Format:         s.Format,
		ConsoleEnabled: s.ConsoleEnabled,
		ConsoleLevel:   s.ConsoleLevel,
	}
}

// ConfigPath returns the configuration file the handle was installed from.
func (l *Logger) ConfigPath() string {
	l.core.mu.RLock()
	defer l.core.mu.RUnlock()
	return l.core.configPath
}

// LogFile returns the absolute path of the handle's active log file.
func (l *Logger) LogFile() string {
	l.core.mu.RLock()
	defer l.core.mu.RUnlock()
	return l.core.set.Path()
}

func (l *Logger) engine() zerolog.Logger {
	l.core.mu.RLock()
	zl := l.core.set.Logger
	l.core.mu.RUnlock()
	if len(l.fields) == 0 {
		return zl
	}
	ctx := zl.With()
	for _, f := range l.fields {
		ctx = ctx.Interface(f.key, f.value)
	}
	return ctx.Logger()
}

func (l *Logger) emit(level zerolog.Level, format string, args []any, extra ...field) {
	zl := l.engine()
	ev := zl.WithLevel(level)
	for _, f := range extra {
		ev = ev.Interface(f.key, f.value)
	}
	if len(args) > 0 {
		ev.Msgf(format, args...)
		return
	}
	ev.Msg(format)
}

// Trace logs at trace level using Printf-style formatting.
func (l *Logger) Trace(format string, args ...any) {
	l.emit(zerolog.TraceLevel, format, args)
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(zerolog.DebugLevel, format, args)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.emit(zerolog.InfoLevel, format, args)
}

// Success logs at info level tagged status=success. The engine has no
// dedicated success level; the tag keeps the records distinguishable.
func (l *Logger) Success(format string, args ...any) {
	l.emit(zerolog.InfoLevel, format, args, field{key: "status", value: "success"})
}

// Warning logs at warn level.
func (l *Logger) Warning(format string, args ...any) {
	l.emit(zerolog.WarnLevel, format, args)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.emit(zerolog.ErrorLevel, format, args)
}

// Critical logs at the engine's fatal level without terminating the process.
func (l *Logger) Critical(format string, args ...any) {
	l.emit(zerolog.FatalLevel, format, args)
}

// Log writes at a named level; unknown names degrade to error.
func (l *Logger) Log(level, format string, args ...any) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		lvl = zerolog.ErrorLevel
	}
	l.emit(lvl, format, args)
}

// With returns a child handle that tags every record with the given
// key/value pair. Children share the parent's sinks and follow its
// reconfiguration.
func (l *Logger) With(key string, value any) *Logger {
	fields := make([]field, len(l.fields)+1)
	copy(fields, l.fields)
	fields[len(l.fields)] = field{key: key, value: value}
	return &Logger{core: l.core, fields: fields}
}

// SetConfig tears down the handle's sinks and reinstalls them from the
// document at path. Only this handle (and its children) is affected; other
// cached handles keep their configuration.
func (l *Logger) SetConfig(path string) error {
	doc, err := config.LoadDocument(path)
	if err != nil {
		return err
	}
	settings := config.Merge(doc, l.core.name)
	set, err := sink.Build(settings)
	if err != nil {
		return err
	}

	l.core.mu.Lock()
	old := l.core.set
	l.core.set = set
	l.core.settings = settings
	l.core.configPath = path
	l.core.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Rotate forces the handle's file sink to roll over immediately.
func (l *Logger) Rotate() error {
	l.core.mu.RLock()
	set := l.core.set
	l.core.mu.RUnlock()
	return set.Rotate()
}

// Close releases the handle's open log file. The handle remains usable; the
// engine reopens the file on the next write.
func (l *Logger) Close() error {
	l.core.mu.RLock()
	set := l.core.set
	l.core.mu.RUnlock()
	return set.Close()
}
