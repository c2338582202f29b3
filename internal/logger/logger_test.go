// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	registry := NewRegistry(new(bytes.Buffer), new(bytes.Buffer))
	logger := registry.Get("app")
	logger.AddSink(NewConsoleSink(buffer))

	logger.SetLevel(TRACE)
	namedLogger := logger.WithName("test_logger")
	assert.Equal(t, "app.test_logger", namedLogger.Name())
	namedLogger.Info("new log line for INFO level")
	logger.Trace("new log line for TRACE level")
	logger.SetLevel(DEBUG)
	logger.Debug("new log line for DEBUG level")
	namedLogger.Warn("new log line for WARN level")

	logger.SetLevel(ERROR)
	namedLogger.Warn("silenced log line for WARN level")
	logger.SetLevel(WARN)
	logger.Error("new log line for ERROR level")
	logger.Debug("silenced log line for DEBUG level")

	logger.SetLevel(NOTSET) // inherit WARN from root
	logger.Info("silenced log line for INFO level after NOTSET")
	namedLogger.Log(ERROR, "new log line for ERROR level after NOTSET")

	lines := strings.Split(buffer.String(), "\n")
	t.Logf("%v", lines)
	assert.Len(t, lines, 7) // 6 log lines plus 1 trailing empty line
	assert.Contains(t, lines[0], "app.test_logger: new log line for INFO level")
}

func TestEffectiveLevel(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(new(bytes.Buffer), new(bytes.Buffer))
	parent := registry.Get("a")
	child := registry.Get("a.b.c")

	assert.Equal(t, NOTSET, child.Level())
	assert.Equal(t, WARN, child.EffectiveLevel())

	parent.SetLevel(DEBUG)
	assert.Equal(t, DEBUG, child.EffectiveLevel())

	child.SetLevel(ERROR)
	assert.Equal(t, ERROR, child.EffectiveLevel())

	registry.Root().SetLevel(NOTSET)
	parent.SetLevel(NOTSET)
	child.SetLevel(NOTSET)
	assert.Equal(t, NOTSET, child.EffectiveLevel())
}

func TestPropagation(t *testing.T) {
	t.Parallel()

	rootBuffer := new(bytes.Buffer)
	parentBuffer := new(bytes.Buffer)
	childBuffer := new(bytes.Buffer)

	registry := NewRegistry(new(bytes.Buffer), new(bytes.Buffer))
	registry.Root().AddSink(NewConsoleSink(rootBuffer))
	parent := registry.Get("svc")
	parent.AddSink(NewConsoleSink(parentBuffer))
	child := registry.Get("svc.worker")
	child.SetLevel(INFO)
	child.AddSink(NewConsoleSink(childBuffer))

	child.Info("propagated")
	assert.Contains(t, childBuffer.String(), "svc.worker: propagated")
	assert.Contains(t, parentBuffer.String(), "svc.worker: propagated")
	assert.Contains(t, rootBuffer.String(), "svc.worker: propagated")

	parent.SetPropagate(false)
	child.Info("stops at parent")
	assert.Contains(t, childBuffer.String(), "stops at parent")
	assert.Contains(t, parentBuffer.String(), "stops at parent")
	assert.NotContains(t, rootBuffer.String(), "stops at parent")

	child.SetPropagate(false)
	child.Info("child only")
	assert.Contains(t, childBuffer.String(), "child only")
	assert.NotContains(t, parentBuffer.String(), "child only")
	assert.NotContains(t, rootBuffer.String(), "child only")
}

func TestSinkThresholdIsIndependent(t *testing.T) {
	t.Parallel()

	verbose := new(bytes.Buffer)
	quiet := new(bytes.Buffer)

	registry := NewRegistry(new(bytes.Buffer), new(bytes.Buffer))
	logger := registry.Get("sinks")
	logger.SetLevel(DEBUG)
	logger.AddSink(NewConsoleSink(verbose))
	quietSink := NewConsoleSink(quiet)
	quietSink.SetLevel(ERROR)
	logger.AddSink(quietSink)

	logger.Debug("debug line")
	logger.Error("error line")

	assert.Contains(t, verbose.String(), "debug line")
	assert.Contains(t, verbose.String(), "error line")
	assert.NotContains(t, quiet.String(), "debug line")
	assert.Contains(t, quiet.String(), "error line")
}

func TestAddAndRemoveSink(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(new(bytes.Buffer), new(bytes.Buffer))
	logger := registry.Get("sinks")
	first := NewConsoleSink(new(bytes.Buffer))
	second := NewConsoleSink(new(bytes.Buffer))

	logger.AddSink(first)
	logger.AddSink(second)
	logger.AddSink(first)
	logger.AddSink(nil)
	require.Equal(t, []*Sink{first, second, first}, logger.Sinks())

	logger.RemoveSink(first)
	assert.Equal(t, []*Sink{first, second}, logger.Sinks())

	logger.RemoveSink(NewConsoleSink(new(bytes.Buffer)))
	assert.Len(t, logger.Sinks(), 2)

	sinks := logger.Sinks()
	sinks[0] = nil
	assert.Equal(t, first, logger.Sinks()[0])
}

func TestLastResort(t *testing.T) {
	t.Parallel()

	stderr := new(bytes.Buffer)
	registry := NewRegistry(new(bytes.Buffer), stderr)
	logger := registry.Get("orphan")
	logger.SetLevel(TRACE)

	logger.Info("below last resort level")
	logger.Warn("no sink configured")
	assert.NotContains(t, stderr.String(), "below last resort level")
	assert.Contains(t, stderr.String(), "orphan: no sink configured")

	stderr.Reset()
	logger.AddSink(NewConsoleSink(new(bytes.Buffer)))
	logger.Error("handled by own sink")
	assert.Empty(t, stderr.String())
}

func TestNullLogger(t *testing.T) {
	t.Parallel()

	assert.Equal(t, nullLogger, nullLogger.WithName("child"))
	assert.False(t, nullLogger.Propagate())
	assert.Empty(t, nullLogger.Sinks())
	assert.NotPanics(t, func() {
		nullLogger.Error("discarded")
	})
}
