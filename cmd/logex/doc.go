// Package main hosts the logex CLI entrypoint and command graph.
//
// The Cobra-based command tree covers configuration scaffolding: showing the
// discovered document with its effective per-logger settings, writing a
// default document, validating an existing one, and printing the version.
//
// Keep this package lean: discovery, merging, and validation live in
// internal/config; commands only translate flags into those calls and render
// the results.
package main
