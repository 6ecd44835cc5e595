package config_test

import (
	"testing"

	"github.com/logex-dev/logex/internal/config"
)

func parseDocument(t *testing.T, yaml string) *config.Document {
	t.Helper()
	doc, err := config.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return doc
}

func TestMergeOverridesAndBuiltins(t *testing.T) {
	doc := parseDocument(t, `
defaults:
  level: "INFO"
  rotation: "10 MB"
loggers:
  db:
    level: "DEBUG"
`)

	s := config.Merge(doc, "db")
	if s.Level != "DEBUG" {
		t.Fatalf("expected named override to win, got level %q", s.Level)
	}
	if s.Rotation != "10 MB" {
		t.Fatalf("expected defaults rotation, got %q", s.Rotation)
	}
	if s.Retention != "10 days" {
		t.Fatalf("expected built-in retention, got %q", s.Retention)
	}
	if s.Compression != "zip" {
		t.Fatalf("expected built-in compression, got %q", s.Compression)
	}
	if s.File != "db.log" {
		t.Fatalf("expected built-in file name, got %q", s.File)
	}
}

func TestMergeEmptyDocumentUsesBuiltins(t *testing.T) {
	s := config.Merge(&config.Document{}, "")
	if s.Name != "app" {
		t.Fatalf("expected default name, got %q", s.Name)
	}
	if s.File != "app.log" || s.Level != "INFO" || s.Rotation != "500 MB" ||
		s.Retention != "10 days" || s.Compression != "zip" || s.Format != "json" {
		t.Fatalf("unexpected built-ins: %+v", s)
	}
	if !s.ConsoleEnabled {
		t.Fatal("expected console enabled by default")
	}
	if s.ConsoleLevel != "INFO" {
		t.Fatalf("expected console level to inherit file level, got %q", s.ConsoleLevel)
	}
}

func TestMergeNilDocument(t *testing.T) {
	s := config.Merge(nil, "worker")
	if s.File != "worker.log" || s.Level != "INFO" {
		t.Fatalf("unexpected settings for nil document: %+v", s)
	}
}

func TestMergeNamedEntryWinsOverLoggerBlock(t *testing.T) {
	doc := parseDocument(t, `
logger:
  level: "DEBUG"
  file: "top.log"
loggers:
  app:
    level: "WARNING"
`)

	s := config.Merge(doc, "app")
	if s.Level != "WARNING" {
		t.Fatalf("expected loggers.app to win over logger block, got %q", s.Level)
	}
	if s.File != "app.log" {
		t.Fatalf("logger block must not leak into the named entry, got file %q", s.File)
	}
}

func TestMergeLoggerBlockOnlyFeedsDefaultName(t *testing.T) {
	doc := parseDocument(t, `
logger:
  file: "custom.log"
  level: "DEBUG"
`)

	if s := config.Merge(doc, ""); s.File != "custom.log" || s.Level != "DEBUG" {
		t.Fatalf("expected logger block applied to default, got %+v", s)
	}
	if s := config.Merge(doc, "db"); s.File != "db.log" || s.Level != "INFO" {
		t.Fatalf("expected logger block ignored for named logger, got %+v", s)
	}
}

func TestMergeConsoleOverrides(t *testing.T) {
	doc := parseDocument(t, `
defaults:
  level: "DEBUG"
  console:
    colorize: false
loggers:
  db:
    console:
      enabled: false
      level: "ERROR"
`)

	s := config.Merge(doc, "db")
	if s.ConsoleEnabled {
		t.Fatal("expected console disabled for db")
	}
	if s.ConsoleLevel != "ERROR" {
		t.Fatalf("unexpected console level %q", s.ConsoleLevel)
	}
	if s.ConsoleColorize == nil || *s.ConsoleColorize {
		t.Fatalf("expected colorize=false from defaults, got %v", s.ConsoleColorize)
	}

	inherited := config.Merge(doc, "other")
	if inherited.ConsoleLevel != "DEBUG" {
		t.Fatalf("expected console level to inherit file level, got %q", inherited.ConsoleLevel)
	}
}

func TestMergeSubstitutesNamePlaceholder(t *testing.T) {
	doc := parseDocument(t, `
defaults:
  file: "logs/{name}.log"
`)

	s := config.Merge(doc, "db")
	if s.File != "logs/db.log" {
		t.Fatalf("expected placeholder substitution, got %q", s.File)
	}
}

func TestMergeIgnoresUnknownKeys(t *testing.T) {
	doc := parseDocument(t, `
defaults:
  level: "INFO"
  frobnicate: true
loggers:
  db:
    level: "DEBUG"
    shiny: "yes"
`)

	s := config.Merge(doc, "db")
	if s.Level != "DEBUG" {
		t.Fatalf("unknown keys must not break merging, got %+v", s)
	}
}
