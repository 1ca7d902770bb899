// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newAggregateCmd(run RunFunc) *cobra.Command {
	aggregateCmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandAggregates, sensucli.MethodGet, setFlags(cmd, nil, "limit", "offset"))
		},
	}
	addPageFlags(listCmd)

	showCmd := &cobra.Command{
		Use:   "show CHECK",
		Short: "Show the aggregate of a check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandAggregates, sensucli.MethodGet, sensucli.Fields{"check": args[0]})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete CHECK",
		Short: "Delete the aggregate of a check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandAggregates, sensucli.MethodDelete, sensucli.Fields{"check": args[0]})
		},
	}

	aggregateCmd.AddCommand(listCmd, showCmd, deleteCmd)
	return aggregateCmd
}
