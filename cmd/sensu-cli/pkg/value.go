// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"
)

// ErrMalformedBody is returned when a successful response does not carry valid JSON.
var ErrMalformedBody = errors.New("response body is not valid JSON")

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a decoded JSON document. Objects keep their member order.
type Value interface {
	Kind() Kind
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

type (
	Object struct{ Members []Member }
	Array  []Value
	String string
	// Number keeps the literal as it appeared in the document.
	Number string
	Bool   bool
	Null   struct{}
)

func (Object) Kind() Kind { return KindObject }
func (Array) Kind() Kind  { return KindArray }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

// Get returns the value of the first member named key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// ParseValue decodes a JSON document.
func ParseValue(data []byte) (Value, error) {
	if !json.Valid(data) {
		return nil, ErrMalformedBody
	}
	raw, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	v, err := convert(raw, dataType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return v, nil
}

func convert(raw []byte, dataType jsonparser.ValueType) (Value, error) {
	switch dataType {
	case jsonparser.Object:
		obj := Object{}
		err := jsonparser.ObjectEach(raw, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
			child, err := convert(value, vt)
			if err != nil {
				return err
			}
			obj.Members = append(obj.Members, Member{Key: string(key), Value: child})
			return nil
		})
		return obj, err
	case jsonparser.Array:
		arr := Array{}
		var inner error
		_, err := jsonparser.ArrayEach(raw, func(value []byte, vt jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}
			if err != nil {
				inner = err
				return
			}
			child, cerr := convert(value, vt)
			if cerr != nil {
				inner = cerr
				return
			}
			arr = append(arr, child)
		})
		if err == nil {
			err = inner
		}
		return arr, err
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		return String(s), err
	case jsonparser.Number:
		return Number(raw), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		return Bool(b), err
	case jsonparser.Null:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %q", raw)
	}
}

// MarshalJSON writes the members in their original order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(m.Key)
		if err != nil {
			return nil, err
		}
		val, err := marshalJSON(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalJSON encodes v compactly without escaping <, > and &.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (n Number) MarshalJSON() ([]byte, error) { return []byte(n), nil }
func (Null) MarshalJSON() ([]byte, error)     { return []byte("null"), nil }

// Text renders a value on one line: scalars bare, containers as compact JSON.
func Text(v Value) string {
	switch t := v.(type) {
	case String:
		return string(t)
	case Number:
		return string(t)
	case Bool:
		return strconv.FormatBool(bool(t))
	case Null:
		return ""
	default:
		b, err := marshalJSON(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// yamlNode converts a value to a yaml.Node so member order survives encoding.
func yamlNode(v Value) *yaml.Node {
	switch t := v.(type) {
	case Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range t.Members {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				yamlNode(m.Value))
		}
		return n
	case Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)}
	case Number:
		tag := "!!int"
		if bytes.ContainsAny([]byte(t), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(t)}
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(t))}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
