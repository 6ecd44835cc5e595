package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logex-dev/logex/internal/config"
)

func TestConfigInitCreatesFile(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "logging.yaml")

	out, _, err := runCLI(t, "config", "init", "--output", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote configuration to")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	requireContains(t, string(data), `level: "INFO"`)
	requireContains(t, string(data), "app.log")
}

func TestConfigInitNameFlag(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logging.yaml")

	if _, _, err := runCLI(t, "config", "init", "-n", "worker", "-o", target); err != nil {
		t.Fatalf("config init: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	requireContains(t, string(data), "worker.log")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logging.yaml")
	original := []byte("defaults:\n  level: \"DEBUG\"\n")
	if err := os.WriteFile(target, original, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, "config", "init", "--output", target)
	if err == nil {
		t.Fatal("expected error for existing file")
	}
	requireContains(t, err.Error(), "already exists")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != string(original) {
		t.Fatalf("existing file was modified:\n%s", data)
	}
}

func TestConfigInitForceOverwrites(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logging.yaml")
	if err := os.WriteFile(target, []byte("old: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCLI(t, "config", "init", "--output", target, "--force")
	if err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	requireContains(t, out, "Wrote configuration to")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if strings.Contains(string(data), "old: true") {
		t.Fatalf("expected old content replaced:\n%s", data)
	}
}

func TestConfigValidateAcceptsGeneratedConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logging.yaml")
	if _, _, err := runCLI(t, "config", "init", "-o", target); err != nil {
		t.Fatalf("config init: %v", err)
	}

	out, _, err := runCLI(t, "config", "validate", "-c", target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateAcceptsEmptyDocument(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logging.yaml")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCLI(t, "config", "validate", "-c", target)
	if err != nil {
		t.Fatalf("empty documents are legal: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateRejectsMalformedYAML(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logging.yaml")
	if err := os.WriteFile(target, []byte("defaults: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, "config", "validate", "-c", target)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	requireContains(t, err.Error(), "parse config")
	requireContains(t, err.Error(), target)
}

func TestConfigValidateRejectsUnknownLevel(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logging.yaml")
	if err := os.WriteFile(target, []byte("defaults:\n  level: \"NOISY\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, "config", "validate", "-c", target)
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	requireContains(t, err.Error(), "unknown log level")
}

func TestConfigShowPrintsEffectiveSettings(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(config.EnvVar, "")
	t.Setenv("HOME", filepath.Join(tmp, "home"))
	chdirT(t, tmp)

	content := `defaults:
  level: "INFO"
loggers:
  db:
    level: "DEBUG"
    file: "db.log"
`
	if err := os.WriteFile(filepath.Join(tmp, config.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "Configuration file:")
	requireContains(t, out, "db.log")
	requireContains(t, out, "app") // default logger row
	requireContains(t, out, "DEBUG")
	requireContains(t, out, "500 MB") // built-in rotation surfaces in the table
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "logex version")
}

// chdirT changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (unavailable before Go 1.24).
func chdirT(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}
