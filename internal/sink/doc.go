// Package sink installs the logging engine's writers for one logger handle.
//
// It owns the translation from resolved settings to concrete sinks: a
// lumberjack-backed rotating file (size rotation, age retention, compression
// of rotated files) and an optional level-filtered console stream with color
// autodetection. Formatting and write serialization belong to the engine;
// this package only assembles writers and hands back a wired zerolog.Logger.
package sink
