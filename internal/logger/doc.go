// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger implements a registry of named, hierarchical loggers rendered through hclog.
// A Registry is owned by the application entrypoint and reaches the rest of the code through
// context helpers; ReturnLogger configures the application console logger on it.
package logger
