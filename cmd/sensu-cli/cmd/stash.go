// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newStashCmd(run RunFunc) *cobra.Command {
	stashCmd := &cobra.Command{
		Use:   "stash",
		Short: "Stash operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stashes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandStashes, sensucli.MethodGet, setFlags(cmd, nil, "limit", "offset"))
		},
	}
	addPageFlags(listCmd)

	showCmd := &cobra.Command{
		Use:   "show PATH",
		Short: "Show a stash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandStashes, sensucli.MethodGet, sensucli.Fields{"path": args[0]})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete PATH",
		Short: "Delete a stash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandStashes, sensucli.MethodDelete, sensucli.Fields{"path": args[0]})
		},
	}

	stashCmd.AddCommand(listCmd, showCmd, deleteCmd)
	return stashCmd
}
