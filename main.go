// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	internalcmd "github.com/mia-platform/logfactory/internal/cmd"
	"github.com/mia-platform/logfactory/internal/info"
	"github.com/mia-platform/logfactory/internal/logger"
)

var (
	// Version is injected at build time via the Makefile.
	Version = info.Version
	// BuildDate is injected at build time via the Makefile.
	BuildDate = info.BuildDate

	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	appShort = "logfactory configures and exercises the application console logger"

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"

	versionCmdName = "version"
)

var (
	allLoggerLevels = []string{
		logger.TRACE.String(),
		logger.DEBUG.String(),
		logger.INFO.String(),
		logger.WARN.String(),
		logger.ERROR.String(),
	}
	logLevelFlagUsage = "set the level of the diagnostic logger (possible values: " + strings.Join(allLoggerLevels, ", ") + ")"
)

// rootEnv holds the environment values used as flag defaults.
type rootEnv struct {
	LoggerLevel string `env:"LOGGER_LEVEL" envDefault:"WARN"`
}

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command, defaults rootEnv) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, defaults.LoggerLevel, heredoc.Doc(logLevelFlagUsage))
}

func main() {
	defaults, err := env.ParseAs[rootEnv]()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd := rootCmd(defaults)
	ctx := newContext(context.Background(), os.Stdout, cmd.ErrOrStderr())

	exitCode := 0
	if err := cmd.ExecuteContext(ctx); err != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}

// newContext creates the application registry and returns ctx carrying it, together with
// its root logger as diagnostic logger writing on stderr.
func newContext(ctx context.Context, stdout, stderr io.Writer) context.Context {
	registry := logger.NewRegistry(stdout, stderr)
	root := registry.Root()
	root.AddSink(logger.NewConsoleSink(stderr))

	ctx = logger.WithRegistry(ctx, registry)
	return logger.WithContext(ctx, root)
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd(defaults rootEnv) *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logger.FromContext(cmd.Context())
			log.SetLevel(logger.LevelFromString(flag.logLevel))
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd, defaults)
	cmd.AddCommand(
		internalcmd.EmitCmd(),
		internalcmd.DescribeCmd(),
		internalcmd.ServeCmd(),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
