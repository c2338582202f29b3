// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

const (
	// FactoryLoggerName is the fixed name of the logger configured by ReturnLogger.
	FactoryLoggerName = "logfactory.logger"
)

// ReturnLogger configures and returns the FactoryLoggerName logger of r: a new
// console sink on the registry stdout is appended, the sink and the logger are
// set to INFO and propagation is disabled.
//
// The call is not idempotent. The logger is shared by name while the sink is
// allocated on every call, so each call adds one more sink and every record is
// then written once per call made so far.
func (r *Registry) ReturnLogger() Logger {
	logger := r.Get(FactoryLoggerName)

	sink := r.NewConsoleSink()
	sink.SetLevel(INFO)
	logger.SetLevel(INFO)
	logger.AddSink(sink)
	logger.SetPropagate(false)

	return logger
}

// ReturnLogger is ReturnLogger on the Default registry.
func ReturnLogger() Logger {
	return Default().ReturnLogger()
}
