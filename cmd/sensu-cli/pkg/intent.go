// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	validationis "github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Method is the HTTP verb an intent is sent with.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodDelete Method = "DELETE"
)

// Command names understood by Resolve.
const (
	CommandClients    = "clients"
	CommandInfo       = "info"
	CommandHealth     = "health"
	CommandAggregates = "aggregates"
	CommandStashes    = "stashes"
	CommandChecks     = "checks"
	CommandEvents     = "events"
	CommandResolve    = "resolve"
	CommandSilence    = "silence"
)

// KnownCommands lists every command Resolve can map to a path.
var KnownCommands = []string{
	CommandClients,
	CommandInfo,
	CommandHealth,
	CommandAggregates,
	CommandStashes,
	CommandChecks,
	CommandEvents,
	CommandResolve,
	CommandSilence,
}

// Fields holds the named flags and positional arguments of a command.
// A value is a string, a bool, or nil when the option was not given.
type Fields map[string]any

// Intent is the parsed form of a command line.
type Intent struct {
	Command string
	Method  Method
	Fields  Fields
}

// String returns the field as a string and whether it is present.
// Absent keys, nil values and empty strings are not present.
func (f Fields) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}

// Has reports whether the field is present.
func (f Fields) Has(key string) bool {
	_, ok := f.String(key)
	return ok
}

// Bool returns the field as a bool; absent or unparseable values are false.
func (f Fields) Bool(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	return cast.ToBool(v)
}

// Validate checks the intent before it is resolved.
func (i Intent) Validate() error {
	err := validation.ValidateStruct(&i,
		validation.Field(&i.Command,
			validation.Required,
			validation.In(lo.ToAnySlice(KnownCommands)...).Error("unknown command")),
		validation.Field(&i.Method,
			validation.Required,
			validation.In(MethodGet, MethodPost, MethodDelete).Error("unsupported method")),
	)
	if err != nil {
		return err
	}

	errs := validation.Errors{}
	for _, key := range []string{"limit", "offset", "messages", "consumers"} {
		s, ok := i.Fields.String(key)
		if !ok {
			continue
		}
		if ferr := validationis.Digit.Validate(s); ferr != nil {
			errs[key] = ferr
		}
	}
	if i.Fields.Has("offset") && !i.Fields.Has("limit") {
		errs["offset"] = fmt.Errorf("offset requires limit")
	}

	switch i.Command {
	case CommandResolve:
		if !i.Fields.Has("client") || !i.Fields.Has("check") {
			errs["client"] = fmt.Errorf("resolve requires client and check")
		}
	case CommandSilence:
		if !i.Fields.Has("client") {
			errs["client"] = fmt.Errorf("silence requires client")
		}
	}
	return errs.Filter()
}
