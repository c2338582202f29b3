// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Sink is a console destination for log records with its own level threshold.
// A single Sink can be attached to more than one logger; records keep the name
// of the logger that emitted them.
type Sink struct {
	mu    sync.RWMutex
	level Level

	base  hclog.Logger
	named map[string]hclog.Logger
}

// NewConsoleSink creates a Sink that renders records as text lines on writer.
// The new sink has the NOTSET level and lets every record through.
func NewConsoleSink(writer io.Writer) *Sink {
	return &Sink{
		level: NOTSET,
		base: hclog.New(&hclog.LoggerOptions{
			Output: writer,
			TimeFn: time.Now,
			Level:  NOTSET.convertedLevel(),
		}),
		named: make(map[string]hclog.Logger),
	}
}

// Level returns the sink threshold.
func (s *Sink) Level() Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

// SetLevel updates the sink threshold.
func (s *Sink) SetLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	s.base.SetLevel(level.convertedLevel())
}

// Handle writes the record if level passes the sink threshold. It reports
// whether the record was written.
func (s *Sink) Handle(name string, level Level, msg string, args ...interface{}) bool {
	log, ok := s.loggerFor(name, level)
	if !ok {
		return false
	}

	log.Log(level.convertedLevel(), msg, args...)
	return true
}

func (s *Sink) loggerFor(name string, level Level) (hclog.Logger, bool) {
	s.mu.RLock()
	if !s.level.enabled(level) {
		s.mu.RUnlock()
		return nil, false
	}
	log, found := s.named[name]
	s.mu.RUnlock()
	if found {
		return log, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if log, found = s.named[name]; !found {
		// sub loggers share output lock and level with base
		log = s.base.ResetNamed(name)
		s.named[name] = log
	}
	return log, true
}
