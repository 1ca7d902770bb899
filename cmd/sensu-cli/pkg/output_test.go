// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	v, err := ParseValue([]byte(`[{"z":1,"a":"b","nested":{"k":[true,null]}}, ["x", 2.5], "plain"]`))
	require.NoError(t, err)

	arr, ok := v.(Array)
	require.True(t, ok)
	require.Len(t, arr, 3)

	obj, ok := arr[0].(Object)
	require.True(t, ok)
	keys := []string{}
	for _, m := range obj.Members {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"z", "a", "nested"}, keys)

	z, _ := obj.Get("z")
	assert.Equal(t, Number("1"), z)
	nested, _ := obj.Get("nested")
	assert.Equal(t, `{"k":[true,null]}`, Text(nested))

	assert.Equal(t, Array{String("x"), Number("2.5")}, arr[1])
	assert.Equal(t, String("plain"), arr[2])
}

func TestParseValueEscapes(t *testing.T) {
	v, err := ParseValue([]byte(`[{"msg":"line\nbreak é"}]`))
	require.NoError(t, err)
	obj := v.(Array)[0].(Object)
	msg, _ := obj.Get("msg")
	assert.Equal(t, String("line\nbreak é"), msg)
}

func TestParseValueMalformed(t *testing.T) {
	for _, body := range []string{``, `[{"a":`, `not json`, `[1,]`} {
		_, err := ParseValue([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedBody, "body %q", body)
	}
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "empty sequence",
			body: `[]`,
			want: NoValuesMessage + "\n",
		},
		{
			name: "single record",
			body: `[{"a":"b"}]`,
			want: "----\na: b\n",
		},
		{
			name: "records keep key order",
			body: `[{"name":"i-1","address":"10.0.0.1"},{"name":"i-2","subscriptions":["web","db"]}]`,
			want: "----\nname: i-1\naddress: 10.0.0.1\n----\nname: i-2\nsubscriptions: [\"web\",\"db\"]\n",
		},
		{
			name: "nested sequence",
			body: `[["web","db"]]`,
			want: "----\nweb\ndb\n",
		},
		{
			name: "scalars",
			body: `["silence/i-1", 3, false]`,
			want: "----\nsilence/i-1\n----\n3\n----\nfalse\n",
		},
		{
			name: "nested values keep markup characters",
			body: `[{"check":{"output":"CRITICAL: load > 5 & rising","tags":[1,"<&>"]},"n":null,"z":"é"}]`,
			want: "----\ncheck: {\"output\":\"CRITICAL: load > 5 & rising\",\"tags\":[1,\"<&>\"]}\nn: \nz: é\n",
		},
		{
			name: "top-level record",
			body: `{"sensu":{"version":"0.12.1"}}`,
			want: "----\nsensu: {\"version\":\"0.12.1\"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue([]byte(tt.body))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Render(&buf, v, FormatText, Painter{}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderTextColor(t *testing.T) {
	v, err := ParseValue([]byte(`[{"a":"b"}]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v, FormatText, Painter{Enabled: true}))
	assert.Equal(t, "----\n\033[36ma:\033[0m \033[32mb\033[0m\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	v, err := ParseValue([]byte(`[{"b":1,"a":[true]}]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v, FormatJSON, Painter{}))
	assert.Equal(t, "[\n  {\n    \"b\": 1,\n    \"a\": [\n      true\n    ]\n  }\n]\n", buf.String())
}

func TestRenderJSONKeepsMarkupCharacters(t *testing.T) {
	v, err := ParseValue([]byte(`[{"a":{"b":"<&>"}}]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v, FormatJSON, Painter{}))
	assert.Equal(t, "[\n  {\n    \"a\": {\n      \"b\": \"<&>\"\n    }\n  }\n]\n", buf.String())
}

func TestRenderYAML(t *testing.T) {
	v, err := ParseValue([]byte(`[{"name":"i-1","port":"4567","count":2,"ok":true,"gone":null}]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v, FormatYAML, Painter{}))
	assert.Equal(t, "- name: i-1\n  port: \"4567\"\n  count: 2\n  ok: true\n  gone: null\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	v, err := ParseValue([]byte(`[{"name":"i-1","address":"10.0.0.1"},{"name":"i-2","version":"0.12"}]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v, FormatTable, Painter{}))
	want := "NAME  ADDRESS   VERSION\n" +
		"i-1   10.0.0.1  \n" +
		"i-2             0.12\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTableKeepsMarkupCharacters(t *testing.T) {
	v, err := ParseValue([]byte(`[{"a":{"b":[1,"<&>"]}}]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v, FormatTable, Painter{}))
	assert.Equal(t, "A\n{\"b\":[1,\"<&>\"]}\n", buf.String())
}

func TestRenderTableFallsBackToText(t *testing.T) {
	v, err := ParseValue([]byte(`["a","b"]`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v, FormatTable, Painter{}))
	assert.Equal(t, "----\na\n----\nb\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, "yaml": FormatYAML, "table": FormatTable} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
