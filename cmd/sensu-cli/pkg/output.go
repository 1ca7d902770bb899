// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Format selects how response bodies are written.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// NoValuesMessage is printed for an empty result.
const NoValuesMessage = "no values for this request"

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml or table)", s)
	}
}

// Render writes v to w in the requested format.
func Render(w io.Writer, v Value, format Format, p Painter) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, v)
	case FormatYAML:
		return renderYAML(w, v)
	case FormatTable:
		return renderTable(w, v, p)
	default:
		return renderText(w, v, p)
	}
}

// items treats the document as a sequence; a lone object or scalar is one item.
func items(v Value) []Value {
	if arr, ok := v.(Array); ok {
		return arr
	}
	return []Value{v}
}

func renderText(w io.Writer, v Value, p Painter) error {
	list := items(v)
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, p.Cyan(NoValuesMessage))
		return err
	}
	for _, item := range list {
		if _, err := fmt.Fprintln(w, "----"); err != nil {
			return err
		}
		switch t := item.(type) {
		case Object:
			for _, m := range t.Members {
				if _, err := fmt.Fprintf(w, "%s %s\n", p.Cyan(m.Key+":"), p.Green(Text(m.Value))); err != nil {
					return err
				}
			}
		case Array:
			for _, e := range t {
				if _, err := fmt.Fprintln(w, p.Cyan(Text(e))); err != nil {
					return err
				}
			}
		default:
			if _, err := fmt.Fprintln(w, p.Cyan(Text(t))); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderJSON(w io.Writer, v Value) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json output: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v Value) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return fmt.Errorf("encoding yaml output: %w", err)
	}
	return enc.Close()
}

// renderTable prints records as columns. Anything that is not a list of
// records falls back to text.
func renderTable(w io.Writer, v Value, p Painter) error {
	list := items(v)
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, p.Cyan(NoValuesMessage))
		return err
	}

	records := make([]Object, 0, len(list))
	for _, item := range list {
		obj, ok := item.(Object)
		if !ok {
			return renderText(w, v, p)
		}
		records = append(records, obj)
	}

	var cols []string
	for _, r := range records {
		cols = append(cols, lo.Map(r.Members, func(m Member, _ int) string { return m.Key })...)
	}
	cols = lo.Uniq(cols)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.ToUpper(strings.Join(cols, "\t"))); err != nil {
		return err
	}
	for _, r := range records {
		row := lo.Map(cols, func(c string, _ int) string {
			if val, ok := r.Get(c); ok {
				return Text(val)
			}
			return ""
		})
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
