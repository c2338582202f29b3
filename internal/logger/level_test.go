// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestLevelStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NOTSET", NOTSET.String())
	assert.Equal(t, "TRACE", TRACE.String())
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "Level(999)", Level(999).String())
	assert.Equal(t, "Level(-1)", Level(-1).String())

	assert.Equal(t, NOTSET, LevelFromString("notset"))
	assert.Equal(t, TRACE, LevelFromString("TRACE"))
	assert.Equal(t, DEBUG, LevelFromString("DEBUG"))
	assert.Equal(t, INFO, LevelFromString("INFO"))
	assert.Equal(t, WARN, LevelFromString("WARN"))
	assert.Equal(t, WARN, LevelFromString("warning"))
	assert.Equal(t, ERROR, LevelFromString("ERROR"))
	assert.Equal(t, INFO, LevelFromString("INVALID"))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, ok := ParseLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, DEBUG, level)

	level, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, INFO, level)
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, INFO.enabled(INFO))
	assert.True(t, INFO.enabled(ERROR))
	assert.False(t, INFO.enabled(DEBUG))
	assert.True(t, NOTSET.enabled(TRACE))

	assert.Equal(t, hclog.Trace, NOTSET.convertedLevel())
	assert.Equal(t, hclog.Info, INFO.convertedLevel())
	assert.Equal(t, hclog.Error, ERROR.convertedLevel())
	assert.Equal(t, hclog.Info, Level(999).convertedLevel())
}
