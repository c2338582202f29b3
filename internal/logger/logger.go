// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"slices"
	"sync"
)

var (
	// nullLogger is a logger that discards all log messages.
	nullLogger = &instance{name: "null"}
)

// Logger describes the interface that must be implemented by all loggers
type Logger interface {
	// Name returns the dot separated name of the logger.
	Name() string

	// WithName returns the child logger "<name>.<childName>" from the same registry.
	WithName(name string) Logger

	// Level returns the threshold set on the logger, NOTSET if it inherits it.
	Level() Level

	// SetLevel updates the logger level.
	SetLevel(level Level)

	// EffectiveLevel returns the first threshold different from NOTSET walking up the hierarchy.
	EffectiveLevel() Level

	// Sinks returns a copy of the attached sinks in attach order.
	Sinks() []*Sink

	// AddSink appends sink to the logger, the same sink can be added more than once.
	AddSink(sink *Sink)

	// RemoveSink detaches the last occurrence of sink, if present.
	RemoveSink(sink *Sink)

	// Propagate reports whether records are also handed to the ancestors' sinks.
	Propagate() bool

	// SetPropagate updates the propagation flag.
	SetPropagate(propagate bool)

	// Log emit a message and key/value pairs at the provided level.
	Log(level Level, msg string, args ...interface{})

	// Trace emit a message and key/value pairs at the TRACE level.
	Trace(msg string, args ...interface{})

	// Debug emit a message and key/value pairs at the DEBUG level.
	Debug(msg string, args ...interface{})

	// Info emit a message and key/value pairs at the INFO level.
	Info(msg string, args ...interface{})

	// Warn emit a message and key/value pairs at the WARN level.
	Warn(msg string, args ...interface{})

	// Error emit a message and key/value pairs at the ERROR level.
	Error(msg string, args ...interface{})
}

// Make sure that instance is a Logger.
var _ Logger = &instance{}

// instance is a Logger implementation owned by a Registry.
type instance struct {
	name     string
	registry *Registry

	mu        sync.RWMutex
	level     Level
	sinks     []*Sink
	propagate bool
}

func newInstance(name string, registry *Registry) *instance {
	return &instance{
		name:      name,
		registry:  registry,
		level:     NOTSET,
		propagate: true,
	}
}

func (i *instance) Name() string {
	return i.name
}

func (i *instance) WithName(name string) Logger {
	if i.registry == nil {
		return i
	}

	if i == i.registry.root {
		return i.registry.Get(name)
	}
	return i.registry.Get(i.name + "." + name)
}

func (i *instance) Level() Level {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.level
}

func (i *instance) SetLevel(level Level) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.level = level
}

func (i *instance) EffectiveLevel() Level {
	for current := i; current != nil; current = current.parent() {
		if level := current.Level(); level != NOTSET {
			return level
		}
	}
	return NOTSET
}

func (i *instance) Sinks() []*Sink {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.sinks)
}

func (i *instance) AddSink(sink *Sink) {
	if sink == nil {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.sinks = append(i.sinks, sink)
}

func (i *instance) RemoveSink(sink *Sink) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for idx := len(i.sinks) - 1; idx >= 0; idx-- {
		if i.sinks[idx] == sink {
			i.sinks = slices.Delete(i.sinks, idx, idx+1)
			return
		}
	}
}

func (i *instance) Propagate() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.propagate
}

func (i *instance) SetPropagate(propagate bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.propagate = propagate
}

// Log hands the record to the logger sinks and, while propagation is enabled,
// to the sinks of every ancestor. Ancestor levels are not checked, only their
// sinks thresholds apply.
func (i *instance) Log(level Level, msg string, args ...interface{}) {
	if !i.EffectiveLevel().enabled(level) {
		return
	}

	found := 0
	for current := i; current != nil; current = current.parent() {
		for _, sink := range current.Sinks() {
			found++
			sink.Handle(i.name, level, msg, args...)
		}

		if !current.Propagate() {
			break
		}
	}

	if found == 0 && i.registry != nil {
		i.registry.lastResort.Handle(i.name, level, msg, args...)
	}
}

func (i *instance) Trace(msg string, args ...interface{}) {
	i.Log(TRACE, msg, args...)
}

func (i *instance) Debug(msg string, args ...interface{}) {
	i.Log(DEBUG, msg, args...)
}

func (i *instance) Info(msg string, args ...interface{}) {
	i.Log(INFO, msg, args...)
}

func (i *instance) Warn(msg string, args ...interface{}) {
	i.Log(WARN, msg, args...)
}

func (i *instance) Error(msg string, args ...interface{}) {
	i.Log(ERROR, msg, args...)
}

// parent returns the nearest registered ancestor, nil for the root and for
// loggers without a registry.
func (i *instance) parent() *instance {
	if i.registry == nil || i == i.registry.root {
		return nil
	}
	return i.registry.parentOf(i.name)
}
