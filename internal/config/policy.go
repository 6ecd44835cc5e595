package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ParseLevel maps a configured level name onto the engine's level scale.
// Names are case-insensitive; warning/warn and critical/fatal are synonyms.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "success", "":
		return zerolog.InfoLevel, nil
	case "warning", "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "critical", "fatal":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.NoLevel, errors.Errorf("unknown log level %q", name)
	}
}

// ParseSize converts a rotation threshold such as "500 MB" into whole
// mebibytes, rounding up so small thresholds still rotate.
func ParseSize(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, errors.New("rotation size is empty")
	}
	bytes, err := humanize.ParseBytes(trimmed)
	if err != nil {
		return 0, errors.Wrapf(err, "rotation size %q", value)
	}
	mb := int((bytes + humanize.MiByte - 1) / humanize.MiByte)
	if mb < 1 {
		mb = 1
	}
	return mb, nil
}

// ParseAge converts a retention window such as "10 days" into whole days.
// Accepted forms: "N days", "N weeks", "Nd", a bare integer (days), or a Go
// duration, rounded up to the next day.
func ParseAge(value string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return 0, errors.New("retention window is empty")
	}

	if fields := strings.Fields(trimmed); len(fields) == 2 {
		n, err := strconv.Atoi(fields[0])
		if err == nil && n >= 0 {
			switch fields[1] {
			case "day", "days":
				return n, nil
			case "week", "weeks":
				return n * 7, nil
			}
		}
	}

	if suffixed := strings.TrimSuffix(trimmed, "d"); suffixed != trimmed {
		if n, err := strconv.Atoi(suffixed); err == nil && n >= 0 {
			return n, nil
		}
	}

	if n, err := strconv.Atoi(trimmed); err == nil && n >= 0 {
		return n, nil
	}

	if d, err := time.ParseDuration(trimmed); err == nil && d >= 0 {
		days := int((d + 24*time.Hour - 1) / (24 * time.Hour))
		return days, nil
	}

	return 0, errors.Errorf("retention window %q: unsupported format", value)
}

// ParseFormat normalizes a sink encoding name: "json" for the engine's native
// structured output, "text" (alias "console") for human-readable lines.
func ParseFormat(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json", "":
		return "json", nil
	case "text", "console":
		return "text", nil
	default:
		return "", errors.Errorf("unknown log format %q", value)
	}
}

// MaxSizeMB resolves the rotation threshold for the file sink.
func (s Settings) MaxSizeMB() (int, error) { return ParseSize(s.Rotation) }

// MaxAgeDays resolves the retention window for rotated files.
func (s Settings) MaxAgeDays() (int, error) { return ParseAge(s.Retention) }

// Compress reports whether rotated files should be compressed. The engine
// emits gzip; zip/gzip/true/on all enable it.
func (s Settings) Compress() bool {
	switch strings.ToLower(strings.TrimSpace(s.Compression)) {
	case "zip", "gzip", "gz", "true", "on", "1":
		return true
	default:
		return false
	}
}
