// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/logfactory/internal/logger"
	"github.com/mia-platform/logfactory/internal/server"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "expose the application console logger over HTTP"
	serveCmdLong  = `Start an HTTP server that writes the messages it receives with the
	application console logger.

	Routes:
	- POST /log: body {"level": "info", "message": "ready"}
	- GET /-/loggers: state of every logger
	- GET /-/healthz and /-/ready: status probes

	The server is configured with the HTTP_HOST, HTTP_PORT and DISABLE_STARTUP_MESSAGE
	environment variables.`

	serveCmdExample = `# Serve on port 8080
	HTTP_PORT=8080 logfactory serve`
)

// serverFactory builds the server from ctx. It can be overridden for testing purposes.
var serverFactory = server.NewServer

// ServeCmd returns the "serve" cli command.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := serve(ctx); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}
}

func serve(ctx context.Context) error {
	diagnostic := logger.FromContext(ctx)
	ctx = logger.WithContext(ctx, logger.RegistryFromContext(ctx).ReturnLogger())

	srv, err := serverFactory(ctx)
	if err != nil {
		return err
	}

	diagnostic.Debug("starting server")
	if err := srv.Serve(ctx); err != nil {
		return err
	}

	diagnostic.Debug("server stopped")
	return nil
}
