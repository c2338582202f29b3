// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

const (
	// RootLoggerName is the name of the logger at the top of every hierarchy.
	RootLoggerName = "root"
)

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(os.Stdout, os.Stderr)
})

// Default returns the process wide registry bound to the standard streams.
// Prefer passing a Registry explicitly, see WithRegistry.
func Default() *Registry {
	return defaultRegistry()
}

// Registry owns a hierarchy of named loggers. Loggers are created on first
// access and live as long as the registry.
type Registry struct {
	mu      sync.RWMutex
	root    *instance
	loggers map[string]*instance

	stdout     io.Writer
	lastResort *Sink
}

// NewRegistry creates an empty hierarchy. Console sinks created by the registry
// write on stdout, records that find no sink at all are written on stderr if
// they are at least WARN.
func NewRegistry(stdout, stderr io.Writer) *Registry {
	registry := &Registry{
		loggers:    make(map[string]*instance),
		stdout:     stdout,
		lastResort: NewConsoleSink(stderr),
	}
	registry.lastResort.SetLevel(WARN)

	registry.root = newInstance(RootLoggerName, registry)
	registry.root.level = WARN
	return registry
}

// Root returns the root logger.
func (r *Registry) Root() Logger {
	return r.root
}

// Get returns the logger registered with name, creating it if needed. Repeated
// calls with the same name return the same instance.
func (r *Registry) Get(name string) Logger {
	if name == "" || name == RootLoggerName {
		return r.root
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if logger, ok := r.loggers[name]; ok {
		return logger
	}

	logger := newInstance(name, r)
	r.loggers[name] = logger
	return logger
}

// Names returns the sorted names of the registered loggers, root excluded.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.loggers))
}

// NewConsoleSink returns a new sink writing on the registry stdout.
func (r *Registry) NewConsoleSink() *Sink {
	return NewConsoleSink(r.stdout)
}

// parentOf returns the nearest registered ancestor of name, the root if none.
func (r *Registry) parentOf(name string) *instance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for idx := strings.LastIndex(name, "."); idx > 0; idx = strings.LastIndex(name[:idx], ".") {
		if logger, ok := r.loggers[name[:idx]]; ok {
			return logger
		}
	}
	return r.root
}
