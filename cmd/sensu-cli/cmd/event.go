// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newEventCmd(run RunFunc) *cobra.Command {
	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "Event operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List current events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandEvents, sensucli.MethodGet, nil)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show CLIENT",
		Short: "Show the events of a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandEvents, sensucli.MethodGet, setFlags(cmd, sensucli.Fields{"client": args[0]}, "check"))
		},
	}
	showCmd.Flags().StringP("check", "k", "", "Only show the event of this check")

	deleteCmd := &cobra.Command{
		Use:   "delete CLIENT CHECK",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandEvents, sensucli.MethodDelete, sensucli.Fields{"client": args[0], "check": args[1]})
		},
	}

	eventCmd.AddCommand(listCmd, showCmd, deleteCmd)
	return eventCmd
}
