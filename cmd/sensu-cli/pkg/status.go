// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"fmt"
	"net/http"
)

// OutcomeKind classifies an API response status.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeCreated
	OutcomeAccepted
	OutcomeDeleted
	OutcomeMalformed
	OutcomeNotFound
	OutcomeError
)

// Outcome is the user-facing interpretation of a response status.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Message    string
}

// Failed reports whether the outcome should end the invocation unsuccessfully.
func (o Outcome) Failed() bool {
	switch o.Kind {
	case OutcomeMalformed, OutcomeNotFound, OutcomeError:
		return true
	}
	return false
}

// Classify maps a status code to an outcome. command names the resource in
// the not-found message.
func Classify(code int, command string) Outcome {
	o := Outcome{StatusCode: code}
	switch code {
	case http.StatusOK:
		o.Kind = OutcomeSuccess
	case http.StatusCreated:
		o.Kind = OutcomeCreated
		o.Message = "The stash has been created."
	case http.StatusAccepted:
		o.Kind = OutcomeAccepted
		o.Message = "The item was submitted for processing."
	case http.StatusNoContent:
		o.Kind = OutcomeDeleted
		o.Message = "The item was successfully deleted."
	case http.StatusBadRequest:
		o.Kind = OutcomeMalformed
		o.Message = "The payload is malformed"
	case http.StatusNotFound:
		o.Kind = OutcomeNotFound
		o.Message = fmt.Sprintf("The %s did not exist", command)
	default:
		o.Kind = OutcomeError
		o.Message = fmt.Sprintf("There was an error while trying to complete your request. Response code: %d", code)
	}
	return o
}

// StatusError is returned when the API answered with a failing status.
// Its message has already been shown to the user.
type StatusError struct {
	Command string
	Outcome Outcome
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Command, e.Outcome.StatusCode, e.Outcome.Message)
}
