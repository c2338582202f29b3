// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/logfactory/internal/logger"
)

var (
	errNoArguments  = errors.New("no arguments provided")
	errInvalidLevel = errors.New("invalid level provided")
	errInvalidCalls = errors.New("calls must be greater than zero")

	// availableLevels holds the levels accepted by the emit command and their description
	// for command completion and help messages.
	availableLevels = map[string]string{
		logger.TRACE.String(): "finest grained messages",
		logger.DEBUG.String(): "diagnostic messages",
		logger.INFO.String():  "informational messages",
		logger.WARN.String():  "warnings",
		logger.ERROR.String(): "errors",
	}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidLevel), errors.Is(err, errInvalidCalls):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

func validLevelsFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	if len(args) == 0 {
		for name, description := range availableLevels {
			if strings.HasPrefix(name, strings.ToUpper(toComplete)) {
				comps = append(comps, cobra.CompletionWithDesc(name, description))
			}
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}
