// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newClientCmd(run RunFunc) *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Client operations",
		Long:  `Commands for listing, inspecting and removing monitored clients.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandClients, sensucli.MethodGet, setFlags(cmd, nil, "limit", "offset"))
		},
	}
	addPageFlags(listCmd)

	showCmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandClients, sensucli.MethodGet, sensucli.Fields{"name": args[0]})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandClients, sensucli.MethodDelete, sensucli.Fields{"name": args[0]})
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history NAME",
		Short: "Show the check history of a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandClients, sensucli.MethodGet, sensucli.Fields{"name": args[0], "history": true})
		},
	}

	clientCmd.AddCommand(listCmd, showCmd, deleteCmd, historyCmd)
	return clientCmd
}
