// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

// SinkState is a point in time view of a Sink.
type SinkState struct {
	Level string `json:"level" yaml:"level"`
}

// LoggerState is a point in time view of a logger configuration.
type LoggerState struct {
	Name           string      `json:"name" yaml:"name"`
	Level          string      `json:"level" yaml:"level"`
	EffectiveLevel string      `json:"effectiveLevel" yaml:"effectiveLevel"`
	Propagate      bool        `json:"propagate" yaml:"propagate"`
	Sinks          []SinkState `json:"sinks" yaml:"sinks"`
}

// StateOf returns the current configuration of logger.
func StateOf(logger Logger) LoggerState {
	sinks := logger.Sinks()
	state := LoggerState{
		Name:           logger.Name(),
		Level:          logger.Level().String(),
		EffectiveLevel: logger.EffectiveLevel().String(),
		Propagate:      logger.Propagate(),
		Sinks:          make([]SinkState, 0, len(sinks)),
	}

	for _, sink := range sinks {
		state.Sinks = append(state.Sinks, SinkState{Level: sink.Level().String()})
	}
	return state
}

// Describe returns the state of the root logger followed by every registered
// logger in name order.
func (r *Registry) Describe() []LoggerState {
	names := r.Names()
	states := make([]LoggerState, 0, len(names)+1)
	states = append(states, StateOf(r.root))
	for _, name := range names {
		states = append(states, StateOf(r.Get(name)))
	}
	return states
}
