package config

import "fmt"

// NotFoundError reports that no configuration file could be resolved, or that
// an explicitly requested one is unreadable.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config not found at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config not found at %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError reports malformed YAML in a configuration document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse config: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failure to create or overwrite a configuration file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write config %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
