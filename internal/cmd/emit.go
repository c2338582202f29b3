// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/logfactory/internal/logger"
)

const (
	emitCmdUsage = "emit LEVEL MESSAGE..."
	emitCmdShort = "write a message with the application console logger"
	emitCmdLong  = `Write a message with the application console logger.
	The logger only lets through messages at INFO level or above and writes
	them on the standard output, so TRACE and DEBUG messages are discarded.`

	emitCmdExample = `# Write an informational message
	logfactory emit info ready`
)

// emitOptions holds the values needed to write a single message.
type emitOptions struct {
	level   string
	message string
}

// EmitCmd returns the "emit" cli command.
func EmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validLevelsFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := emitOptionsFromArgs(args)
			level, err := opts.validate()
			if err != nil {
				return handleError(cmd, err)
			}

			opts.execute(cmd.Context(), level)
			return nil
		},
	}

	return cmd
}

func emitOptionsFromArgs(args []string) *emitOptions {
	opts := &emitOptions{}
	if len(args) > 0 {
		opts.level = args[0]
	}
	if len(args) > 1 {
		opts.message = strings.Join(args[1:], " ")
	}

	return opts
}

// validate checks the configured values and returns the parsed level.
func (o *emitOptions) validate() (logger.Level, error) {
	if o.level == "" || o.message == "" {
		return logger.NOTSET, errNoArguments
	}

	level, ok := logger.ParseLevel(o.level)
	if !ok || level == logger.NOTSET {
		return logger.NOTSET, fmt.Errorf("%w: %s", errInvalidLevel, o.level)
	}

	return level, nil
}

// execute writes the message through the factory logger of the registry in ctx.
func (o *emitOptions) execute(ctx context.Context, level logger.Level) {
	log := logger.RegistryFromContext(ctx).ReturnLogger()
	log.Log(level, o.message)
}
