// Package logex is a thin convenience wrapper around zerolog that adds
// YAML-based configuration discovery, multi-logger management, and formatted
// exception reporting.
//
// It is not a logging engine: formatting, level semantics, file rotation,
// retention, and compression are delegated to zerolog and lumberjack. The
// package finds logging.yaml (environment override, directory walk-up,
// well-known locations, or a generated default), resolves per-logger
// effective settings, and caches one configured handle per name for the life
// of the process.
//
// Typical usage:
//
//	log, err := logex.Default()
//	if err != nil {
//		panic(err)
//	}
//	log.Info("application started")
//
//	if err := risky(); err != nil {
//		log.Exception(err, map[string]any{"job": jobID})
//	}
//
// Named loggers with their own sinks come from GetLogger; handles returned
// for the same name are the same instance.
package logex

// Version is the library and CLI release version.
const Version = "0.1.0"
