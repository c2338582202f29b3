// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

//go:generate ${TOOLS_BIN}/stringer -type=Level
type Level int

const (
	// NOTSET delegates the threshold to the nearest ancestor logger.
	NOTSET Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
)

func LevelFromString(level string) Level {
	switch strings.ToUpper(level) {
	case "NOTSET":
		return NOTSET
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// ParseLevel is like LevelFromString but reports unknown values instead of defaulting.
func ParseLevel(level string) (Level, bool) {
	switch strings.ToUpper(level) {
	case "NOTSET", "TRACE", "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
		return LevelFromString(level), true
	default:
		return INFO, false
	}
}

func (l Level) convertedLevel() hclog.Level {
	switch l {
	case NOTSET, TRACE:
		return hclog.Trace
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARN:
		return hclog.Warn
	case ERROR:
		return hclog.Error
	default:
		return hclog.Info
	}
}

// enabled reports whether a record at level passes the threshold l.
func (l Level) enabled(level Level) bool {
	return level >= l
}
