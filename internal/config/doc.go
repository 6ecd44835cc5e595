// Package config discovers, parses, and merges logex configuration data.
//
// It locates logging.yaml using a multi-level fallback strategy (environment
// override, directory walk-up, well-known locations, generated default),
// decodes the document with yaml.v3, and resolves per-logger effective
// settings by overlaying the defaults block, the logger's own block, and
// built-in fallback values. The Settings type centralizes every knob the
// registry and CLI need.
//
// Always obtain settings through Merge so downstream code receives concrete
// values for every recognized key; raw document blocks never leave this
// package.
package config
