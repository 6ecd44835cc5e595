package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Locate resolves the configuration file path using the fallback strategy:
//
//  1. LOGEX_CONFIG environment variable (must point at an existing file)
//  2. logging.yaml in the working directory or any parent, up to the root
//  3. well-known relative locations (config/, src/config/, configs/,
//     .config/) plus ~/.logex/logging.yaml
//  4. a generated default written to ./logging.yaml
//
// Locate is idempotent: once a file exists it is found by step 2 on every
// subsequent call and nothing new is created.
func Locate() (string, error) {
	if env := os.Getenv(EnvVar); env != "" {
		abs, err := filepath.Abs(env)
		if err != nil {
			return "", &NotFoundError{Path: env, Err: err}
		}
		if _, err := os.Stat(abs); err != nil {
			return "", &NotFoundError{Path: env, Err: err}
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", &NotFoundError{Path: ".", Err: err}
	}

	if path, ok := walkUp(cwd, ConfigFileName); ok {
		return path, nil
	}

	for _, candidate := range wellKnownLocations(cwd) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	target := filepath.Join(cwd, ConfigFileName)
	if err := WriteDefault(target, DefaultName, false); err != nil {
		// Another process may have created the file between the walk-up
		// and the locked write; that file is the answer.
		if errors.Is(err, fs.ErrExist) {
			return target, nil
		}
		return "", err
	}
	return target, nil
}

// walkUp searches start and each parent directory for filename, stopping at
// the filesystem root.
func walkUp(start, filename string) (string, bool) {
	current := start
	for {
		candidate := filepath.Join(current, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func wellKnownLocations(cwd string) []string {
	locations := []string{
		filepath.Join(cwd, "config", ConfigFileName),
		filepath.Join(cwd, "src", "config", ConfigFileName),
		filepath.Join(cwd, "configs", ConfigFileName),
		filepath.Join(cwd, ".config", ConfigFileName),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".logex", ConfigFileName))
	}
	return locations
}

// WriteDefault writes the generated default document to path. Unless force is
// set, an existing file is left untouched and the returned error matches
// fs.ErrExist. A file lock serializes concurrent processes racing to create
// the same default.
func WriteDefault(path, name string, force bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if !force {
		if _, err := os.Stat(path); err == nil {
			return &WriteError{Path: path, Err: fs.ErrExist}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := os.WriteFile(path, []byte(DefaultYAML(name)), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
