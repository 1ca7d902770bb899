// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher runs one intent end to end: resolve, send, classify, render.
type Dispatcher struct {
	Client  Doer
	Out     io.Writer
	Format  Format
	Painter Painter
	Log     zerolog.Logger
	// Now supplies silence timestamps; defaults to time.Now.
	Now func() time.Time
}

// Run executes in and writes the outcome to d.Out. Failing statuses are
// reported as *StatusError after their message has been written.
func (d *Dispatcher) Run(ctx context.Context, in Intent) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid %s command: %w", in.Command, err)
	}

	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	desc, err := Resolve(in, now())
	if err != nil {
		return err
	}

	resp, err := d.Client.Do(ctx, desc)
	if err != nil {
		return err
	}

	outcome := Classify(resp.StatusCode, desc.Command)
	d.Log.Debug().
		Str("command", desc.Command).
		Int("status", outcome.StatusCode).
		Msg("classified response")

	if outcome.Kind != OutcomeSuccess {
		msg := outcome.Message
		switch outcome.Kind {
		case OutcomeNotFound:
			msg = d.Painter.Cyan(msg)
		case OutcomeMalformed, OutcomeError:
			msg = d.Painter.Red(msg)
		}
		if _, err := fmt.Fprintln(d.Out, msg); err != nil {
			return err
		}
		if outcome.Failed() {
			return &StatusError{Command: desc.Command, Outcome: outcome}
		}
		return nil
	}

	v, err := ParseValue(resp.Body)
	if err != nil {
		return err
	}
	return Render(d.Out, v, d.Format, d.Painter)
}
