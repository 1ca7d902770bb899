// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	sensucli "github.com/sensu/sensu-cli/cmd/sensu-cli/pkg"
)

// emit validates an intent and hands it to run.
func emit(cmd *cobra.Command, run RunFunc, command string, method sensucli.Method, fields sensucli.Fields) error {
	if fields == nil {
		fields = sensucli.Fields{}
	}
	in := sensucli.Intent{Command: command, Method: method, Fields: fields}
	if err := in.Validate(); err != nil {
		return err
	}
	return run(cmd, in)
}

// addPageFlags registers the pagination flags used by list commands.
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("limit", "l", "", "Maximum number of items to return")
	cmd.Flags().StringP("offset", "o", "", "Number of items to skip (requires --limit)")
}

// setFlags copies the named string flags that were given on the command line.
func setFlags(cmd *cobra.Command, fields sensucli.Fields, names ...string) sensucli.Fields {
	if fields == nil {
		fields = sensucli.Fields{}
	}
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, _ := cmd.Flags().GetString(name)
		fields[name] = v
	}
	return fields
}
