// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newSilenceCmd(run RunFunc) *cobra.Command {
	silenceCmd := &cobra.Command{
		Use:   "silence CLIENT",
		Short: "Silence alerts for a client or one of its checks",
		Long: `Silence alerts for a client or one of its checks.

A silence is a stash under silence/ carrying the time it was created.

Examples:
  sensu-cli silence i-424242
  sensu-cli silence i-424242 -k ntp -r "maintenance window"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandSilence, sensucli.MethodPost, setFlags(cmd, sensucli.Fields{"client": args[0]}, "check", "reason"))
		},
	}
	silenceCmd.Flags().StringP("check", "k", "", "Silence only this check")
	silenceCmd.Flags().StringP("reason", "r", "", "Reason stored with the silence")
	return silenceCmd
}
