// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mia-platform/logfactory/internal/logger"
)

const (
	describeCmdUsage = "describe"
	describeCmdShort = "print the loggers configuration"
	describeCmdLong  = `Configure the application console logger and print the state of every
	logger as YAML.
	The console logger is shared, but each configuration attaches a new sink to it:
	use --calls to see how sinks pile up when it is configured more than once.`

	describeCmdExample = `# Configure the console logger twice and print the result
	logfactory describe --calls 2`

	callsFlagName  = "calls"
	callsFlagUsage = "number of times the console logger is configured before printing"
	defaultCalls   = 1
)

// describeFlags collects the CLI options of the describe command.
type describeFlags struct {
	calls int
}

// addFlags registers the CLI flags on cmd.
func (f *describeFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.calls, callsFlagName, defaultCalls, callsFlagUsage)
}

// describeOptions holds the values needed to print the loggers state.
type describeOptions struct {
	calls  int
	writer io.Writer
}

// DescribeCmd returns the "describe" cli command.
func DescribeCmd() *cobra.Command {
	flags := &describeFlags{}
	cmd := &cobra.Command{
		Use:     describeCmdUsage,
		Short:   heredoc.Doc(describeCmdShort),
		Long:    heredoc.Doc(describeCmdLong),
		Example: heredoc.Doc(describeCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := &describeOptions{
				calls:  flags.calls,
				writer: cmd.OutOrStdout(),
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

func (o *describeOptions) validate() error {
	if o.calls < 1 {
		return fmt.Errorf("%w: %d", errInvalidCalls, o.calls)
	}

	return nil
}

func (o *describeOptions) execute(ctx context.Context) error {
	registry := logger.RegistryFromContext(ctx)
	for range o.calls {
		registry.ReturnLogger()
	}

	encoder := yaml.NewEncoder(o.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(registry.Describe()); err != nil {
		return fmt.Errorf("encoding loggers state: %w", err)
	}

	return encoder.Close()
}
