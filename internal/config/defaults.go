package config

import (
	_ "embed"
	"strings"
)

//go:embed default_logging.yaml
var defaultDocument string

// ConfigFileName is the file the locator searches for.
const ConfigFileName = "logging.yaml"

// EnvVar overrides discovery when set; it must point at an existing file.
const EnvVar = "LOGEX_CONFIG"

// DefaultName is the logger name used when callers pass an empty name.
const DefaultName = "app"

// Built-in fallback values, used when neither the defaults block nor the
// logger's own block supplies a key.
const (
	defaultLevel       = "INFO"
	defaultRotation    = "500 MB"
	defaultRetention   = "10 days"
	defaultCompression = "zip"
	defaultFormat      = "json"
)

// DefaultYAML returns the generated default document with the logger name
// substituted into the {name} placeholder.
func DefaultYAML(name string) string {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	return strings.ReplaceAll(defaultDocument, "{name}", name)
}
