// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// sensu-cli is a command line client for the Sensu monitoring API.
//
// Each invocation parses one command into an intent, resolves it to a single
// HTTP request, and prints the API's answer as text, json, yaml or a table.
// Any failure, including a non-success HTTP status, exits with status 1.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sensu/sensu-cli/cmd/sensu-cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
