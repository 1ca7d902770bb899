// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newCheckCmd(run RunFunc) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List check definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandChecks, sensucli.MethodGet, nil)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a check definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandChecks, sensucli.MethodGet, setFlags(cmd, sensucli.Fields{"name": args[0]}, "check"))
		},
	}
	showCmd.Flags().StringP("check", "k", "", "Narrow to a sub-check")

	checkCmd.AddCommand(listCmd, showCmd)
	return checkCmd
}
