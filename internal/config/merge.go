package config

import "strings"

// Settings is the fully-resolved configuration for one logger. Every field is
// concrete after Merge; recognized keys are never empty.
type Settings struct {
	Name        string
	File        string
	Level       string
	Rotation    string
	Retention   string
	Compression string
	Format      string

	ConsoleEnabled bool
	ConsoleLevel   string
	// ConsoleColorize is nil when the document leaves it unset, in which
	// case color is enabled only for terminal output.
	ConsoleColorize *bool
}

// Merge resolves the effective settings for the named logger: built-in values
// first, then the defaults block, then the logger's own block. Only keys that
// are explicitly present override. A named entry under loggers wins over the
// top-level logger block, which applies only to the default logger.
func Merge(doc *Document, name string) Settings {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}

	s := Settings{
		Name:           name,
		File:           name + ".log",
		Level:          defaultLevel,
		Rotation:       defaultRotation,
		Retention:      defaultRetention,
		Compression:    defaultCompression,
		Format:         defaultFormat,
		ConsoleEnabled: true,
	}

	if doc != nil {
		s.apply(doc.Defaults)
		s.apply(doc.override(name))
	}

	if s.ConsoleLevel == "" {
		s.ConsoleLevel = s.Level
	}
	s.File = strings.ReplaceAll(s.File, "{name}", name)
	return s
}

func (s *Settings) apply(b *Block) {
	if b == nil {
		return
	}
	if b.File != nil && *b.File != "" {
		s.File = *b.File
	}
	if b.Level != nil && *b.Level != "" {
		s.Level = *b.Level
	}
	if b.Rotation != nil && *b.Rotation != "" {
		s.Rotation = *b.Rotation
	}
	if b.Retention != nil && *b.Retention != "" {
		s.Retention = *b.Retention
	}
	if b.Compression != nil {
		s.Compression = *b.Compression
	}
	if b.Format != nil && *b.Format != "" {
		s.Format = *b.Format
	}
	if b.Console != nil {
		if b.Console.Enabled != nil {
			s.ConsoleEnabled = *b.Console.Enabled
		}
		if b.Console.Level != nil && *b.Console.Level != "" {
			s.ConsoleLevel = *b.Console.Level
		}
		if b.Console.Colorize != nil {
			colorize := *b.Console.Colorize
			s.ConsoleColorize = &colorize
		}
	}
}
