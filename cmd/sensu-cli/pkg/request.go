// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ErrUnknownCommand is returned by Resolve for a command it has no path for.
var ErrUnknownCommand = errors.New("unknown command")

// Descriptor is a fully resolved API request.
type Descriptor struct {
	Command string
	Method  Method
	Path    string
	Query   url.Values
	Payload []byte
}

// URI returns the path with the encoded query appended.
func (d Descriptor) URI() string {
	if len(d.Query) == 0 {
		return d.Path
	}
	return d.Path + "?" + d.Query.Encode()
}

type resolvePayload struct {
	Client string `mapstructure:"client" json:"client"`
	Check  string `mapstructure:"check" json:"check"`
}

type silencePayload struct {
	Timestamp int64  `mapstructure:"-" json:"timestamp"`
	Reason    string `mapstructure:"reason" json:"reason,omitempty"`
}

// Resolve maps an intent to the request it stands for. It does no I/O;
// now supplies the silence timestamp.
//
// Field values are substituted into paths as given.
func Resolve(in Intent, now time.Time) (Descriptor, error) {
	f := in.Fields
	d := Descriptor{Command: in.Command, Method: in.Method}

	switch in.Command {
	case CommandClients:
		name, ok := f.String("name")
		switch {
		case ok && f.Bool("history"):
			d.Path = "/clients/" + name + "/history"
		case ok:
			d.Path = "/client/" + name
		default:
			d.Path = "/clients"
			d.Query = pageQuery(f)
		}
	case CommandInfo:
		d.Path = "/info"
	case CommandHealth:
		d.Path = "/health"
		d.Query = presentQuery(f, "consumers", "messages")
	case CommandAggregates:
		if check, ok := f.String("check"); ok {
			d.Path = "/aggregates/" + check
		} else {
			d.Path = "/aggregates"
			d.Query = pageQuery(f)
		}
	case CommandStashes:
		if path, ok := f.String("path"); ok {
			d.Path = "/stashes/" + path
		} else {
			d.Path = "/stashes"
			d.Query = pageQuery(f)
		}
	case CommandChecks:
		name, hasName := f.String("name")
		check, hasCheck := f.String("check")
		switch {
		case hasName && hasCheck:
			d.Path = "/check/" + name + "/" + check
		case hasName:
			d.Path = "/check/" + name
		default:
			d.Path = "/checks"
		}
	case CommandEvents:
		client, hasClient := f.String("client")
		check, hasCheck := f.String("check")
		switch {
		case hasClient && hasCheck:
			d.Path = "/events/" + client + "/" + check
		case hasClient:
			d.Path = "/events/" + client
		default:
			d.Path = "/events"
		}
	case CommandResolve:
		var p resolvePayload
		if err := decodeFields(f, &p); err != nil {
			return Descriptor{}, err
		}
		body, err := json.Marshal(p)
		if err != nil {
			return Descriptor{}, fmt.Errorf("encoding resolve payload: %w", err)
		}
		d.Path = "/event/resolve"
		d.Payload = body
	case CommandSilence:
		client, _ := f.String("client")
		if check, ok := f.String("check"); ok {
			d.Path = "/stashes/silence/" + client + "/" + check
		} else {
			d.Path = "/stashes/silence/" + client
		}
		p := silencePayload{Timestamp: now.Unix()}
		if err := decodeFields(f, &p); err != nil {
			return Descriptor{}, err
		}
		body, err := json.Marshal(p)
		if err != nil {
			return Descriptor{}, fmt.Errorf("encoding silence payload: %w", err)
		}
		d.Payload = body
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownCommand, in.Command)
	}

	return d, nil
}

// decodeFields copies the present string fields into a payload struct.
func decodeFields(f Fields, out interface{}) error {
	present := map[string]string{}
	for k := range f {
		if s, ok := f.String(k); ok {
			present[k] = s
		}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("building field decoder: %w", err)
	}
	if err := dec.Decode(present); err != nil {
		return fmt.Errorf("decoding fields: %w", err)
	}
	return nil
}

// pageQuery passes limit and offset through; offset is only sent with a limit.
func pageQuery(f Fields) url.Values {
	if !f.Has("limit") {
		return nil
	}
	return presentQuery(f, "limit", "offset")
}

func presentQuery(f Fields, keys ...string) url.Values {
	var q url.Values
	for _, k := range keys {
		if v, ok := f.String(k); ok {
			if q == nil {
				q = url.Values{}
			}
			q.Set(k, v)
		}
	}
	return q
}
