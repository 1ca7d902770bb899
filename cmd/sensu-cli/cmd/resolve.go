// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newResolveCmd(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CLIENT CHECK",
		Short: "Resolve an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandResolve, sensucli.MethodPost, sensucli.Fields{"client": args[0], "check": args[1]})
		},
	}
}
