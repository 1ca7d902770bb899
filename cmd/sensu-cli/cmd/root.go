// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

// RunFunc receives the intent produced by the invoked leaf command.
type RunFunc func(cmd *cobra.Command, in sensucli.Intent) error

// NewRootCommand builds the sensu-cli command tree. Every leaf command hands
// its intent to run.
func NewRootCommand(run RunFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sensu-cli",
		Short: "Command line client for the Sensu API",
		Long: `sensu-cli queries and manages a Sensu server through its HTTP API:
clients, checks, events, aggregates, stashes and silences.

Connection settings come from flags, SENSU_CLI_* environment variables,
a .env file, or the config file (default ~/.sensu/cli.yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			setupLogging(cmd, debug)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", sensucli.ConfigPath(), "Path to config file")
	pf.String(sensucli.ConfigHost, "", "API host")
	pf.Int(sensucli.ConfigPort, 0, "API port")
	pf.Bool(sensucli.ConfigSSL, false, "Use HTTPS (the server certificate is not verified)")
	pf.StringP("output", "f", string(sensucli.FormatText), "Output format: text, json, yaml, table")
	pf.Bool("no-color", false, "Disable colored output")
	pf.Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newClientCmd(run),
		newInfoCmd(run),
		newHealthCmd(run),
		newAggregateCmd(run),
		newCheckCmd(run),
		newEventCmd(run),
		newSilenceCmd(run),
		newResolveCmd(run),
		newStashCmd(run),
		newInitCmd(),
	)

	return rootCmd
}

func setupLogging(cmd *cobra.Command, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

// Dispatch loads settings from the command's flags and sends the intent to
// the API.
func Dispatch(cmd *cobra.Command, in sensucli.Intent) error {
	flags := cmd.Flags()

	output, _ := flags.GetString("output")
	format, err := sensucli.ParseFormat(output)
	if err != nil {
		return err
	}

	v := sensucli.NewViper()
	for _, key := range []string{sensucli.ConfigHost, sensucli.ConfigPort, sensucli.ConfigSSL} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	cfgPath, _ := flags.GetString("config")
	settings, err := sensucli.LoadSettings(v, cfgPath)
	if err != nil {
		return err
	}

	noColor, _ := flags.GetBool("no-color")
	d := &sensucli.Dispatcher{
		Client:  sensucli.NewClient(*settings, log.Logger),
		Out:     cmd.OutOrStdout(),
		Format:  format,
		Painter: sensucli.NewPainter(cmd.OutOrStdout(), noColor),
		Log:     log.Logger,
	}
	return d.Run(cmd.Context(), in)
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	return execute(ctx, NewRootCommand(Dispatch), args)
}

// execute runs rootCmd and reports any error it returns. Timeouts are printed
// to the command's output next to the status messages.
func execute(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var statusErr *sensucli.StatusError
	switch {
	case errors.As(err, &statusErr):
		// already reported by the dispatcher
	case errors.Is(err, sensucli.ErrTimeout):
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		painter := sensucli.NewPainter(rootCmd.OutOrStdout(), noColor)
		fmt.Fprintln(rootCmd.OutOrStdout(), painter.Red(sensucli.ErrTimeout.Error()))
	default:
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	}
	return 1
}
