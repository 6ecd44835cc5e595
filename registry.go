package logex

import (
	"sort"
	"strings"
	"sync"

	"github.com/logex-dev/logex/internal/config"
	"github.com/logex-dev/logex/internal/sink"
)

// Registry caches one configured logger handle per name for the life of the
// process. The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// NewRegistry returns an empty registry. Most callers want the package-level
// GetLogger and Default, which share a process-wide instance; a dedicated
// registry keeps lifecycles isolated for tests and embedders.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// Get returns the cached handle for name, installing its sinks on first use.
// An empty name selects the default logger. configPath overrides discovery
// and is ignored for names that are already configured. Concurrent first
// calls for one name race benignly: the losing install is torn down and the
// cached handle returned.
func (r *Registry) Get(name, configPath string) (*Logger, error) {
	if strings.TrimSpace(name) == "" {
		name = config.DefaultName
	}

	r.mu.RLock()
	cached := r.loggers[name]
	r.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	path := configPath
	if path == "" {
		located, err := config.Locate()
		if err != nil {
			return nil, err
		}
		path = located
	}

	doc, err := config.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	settings := config.Merge(doc, name)
	set, err := sink.Build(settings)
	if err != nil {
		return nil, err
	}

	logger := newLogger(name, path, settings, set)

	r.mu.Lock()
	if existing := r.loggers[name]; existing != nil {
		r.mu.Unlock()
		_ = set.Close()
		return existing, nil
	}
	r.loggers[name] = logger
	r.mu.Unlock()
	return logger, nil
}

// Names lists the configured logger names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Drop removes the named handle and releases its sinks; the next Get for the
// name installs fresh ones. Handles already held by callers keep working.
func (r *Registry) Drop(name string) {
	if strings.TrimSpace(name) == "" {
		name = config.DefaultName
	}
	r.mu.Lock()
	logger := r.loggers[name]
	delete(r.loggers, name)
	r.mu.Unlock()
	if logger != nil {
		_ = logger.Close()
	}
}

// Close releases every cached handle. The registry stays usable.
func (r *Registry) Close() error {
	r.mu.Lock()
	loggers := make([]*Logger, 0, len(r.loggers))
	for name, logger := range r.loggers {
		loggers = append(loggers, logger)
		delete(r.loggers, name)
	}
	r.mu.Unlock()

	var first error
	for _, logger := range loggers {
		if err := logger.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

var defaultRegistry = NewRegistry()

// GetLogger returns the process-wide handle for name, configuring it on first
// use. An empty name selects the default logger; an empty configPath runs
// discovery.
func GetLogger(name, configPath string) (*Logger, error) {
	return defaultRegistry.Get(name, configPath)
}

// Default returns the default logger, configuring it on first use.
func Default() (*Logger, error) {
	return defaultRegistry.Get("", "")
}
