// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the HTTP surface of logfactory.
// It sets up the HTTP server using the Fiber framework, configures middleware for logging,
// and defines routes for health checks, the loggers state and message emission.
package server
