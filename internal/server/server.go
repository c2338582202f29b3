// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/logfactory/internal/info"
	"github.com/mia-platform/logfactory/internal/logger"
)

const (
	serviceName = "logfactory"
	loggerName  = "server"
)

type Server interface {
	App() *fiber.App
	Serve(ctx context.Context) error
}

type impServer struct {
	config

	app *fiber.App
	log logger.Logger
}

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// NewServer creates the server; messages received on the log route and the request logs
// are written with the logger found in ctx, the loggers route describes the registry in ctx.
func NewServer(ctx context.Context) (Server, error) {
	cfg, err := LoadServerConfig()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true,
	})
	log := logger.FromContext(ctx)
	app.Use(logger.RequestMiddlewareLogger(log, []string{"/-/"}))

	statusRoutes(app, serviceName, info.Version)
	loggersRoutes(app, logger.RegistryFromContext(ctx), log)

	return &impServer{
		app:    app,
		log:    log,
		config: *cfg,
	}, nil
}

func (s *impServer) App() *fiber.App {
	return s.app
}

// Serve binds the configured address and blocks until the server fails or ctx is done,
// in the latter case the server is shut down before returning. A ctx already done when
// Serve is called returns without binding.
func (s *impServer) Serve(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}

	log := s.log.WithName(loggerName)
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.HTTPHost, s.HTTPPort))
	if err != nil {
		log.Error("cannot bind address", "error", err)
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}

	log.Info("server listening", "address", listener.Addr().String())
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.app.Listener(listener)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			log.Error("server stopped unexpectedly", "error", err)
			return fmt.Errorf("%w: %w", ErrServerListen, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownErr := s.app.Shutdown()
	// closing the listener unblocks the serving goroutine even if it was not accepting yet
	_ = listener.Close()
	serveErr := <-errChan

	if shutdownErr != nil {
		log.Error("server shutdown failed", "error", shutdownErr)
		return fmt.Errorf("%w: %w", ErrServerShutdown, shutdownErr)
	}
	if serveErr != nil && !errors.Is(serveErr, net.ErrClosed) {
		log.Error("server stopped unexpectedly", "error", serveErr)
		return fmt.Errorf("%w: %w", ErrServerListen, serveErr)
	}

	log.Info("server stopped")
	return nil
}
