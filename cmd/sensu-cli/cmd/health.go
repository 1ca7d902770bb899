// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

func newHealthCmd(run RunFunc) *cobra.Command {
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check transport health against thresholds",
		Long: `Check transport health against thresholds.

The API answers 204 when the keepalive and result queues have at least
--consumers consumers and at most --messages queued messages.

Examples:
  sensu-cli health --messages 100 --consumers 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run, sensucli.CommandHealth, sensucli.MethodGet, setFlags(cmd, nil, "consumers", "messages"))
		},
	}
	healthCmd.Flags().StringP("messages", "m", "", "Maximum number of queued messages (required)")
	healthCmd.Flags().StringP("consumers", "c", "", "Minimum number of consumers (required)")
	healthCmd.MarkFlagRequired("messages")
	healthCmd.MarkFlagRequired("consumers")
	return healthCmd
}
