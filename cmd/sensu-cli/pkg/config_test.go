// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	got, err := LoadSettings(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, &Settings{
		Host:           DefaultHost,
		Port:           DefaultPort,
		SSL:            false,
		ConnectTimeout: DefaultConnectTimeout,
		ReadTimeout:    DefaultReadTimeout,
	}, got)
	assert.Equal(t, "http://127.0.0.1:4567", got.BaseURL())
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := writeConfig(t, "host: sensu.example.com\nport: 8443\nssl: true\nread_timeout: 30s\n")

	got, err := LoadSettings(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "sensu.example.com", got.Host)
	assert.Equal(t, 8443, got.Port)
	assert.True(t, got.SSL)
	assert.Equal(t, 30*time.Second, got.ReadTimeout)
	assert.Equal(t, DefaultConnectTimeout, got.ConnectTimeout)
	assert.Equal(t, "https://sensu.example.com:8443", got.BaseURL())
}

func TestLoadSettingsPrecedence(t *testing.T) {
	path := writeConfig(t, "host: file.example.com\nport: 1111\n")
	t.Setenv("SENSU_CLI_HOST", "env.example.com")
	t.Setenv("SENSU_CLI_PORT", "2222")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int(ConfigPort, 0, "")
	require.NoError(t, flags.Parse([]string{"--port", "3333"}))

	v := NewViper()
	require.NoError(t, v.BindPFlag(ConfigPort, flags.Lookup(ConfigPort)))

	got, err := LoadSettings(v, path)
	require.NoError(t, err)
	assert.Equal(t, "env.example.com", got.Host)
	assert.Equal(t, 3333, got.Port)
}

func TestLoadSettingsUnchangedFlagDoesNotOverride(t *testing.T) {
	path := writeConfig(t, "port: 1111\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int(ConfigPort, 0, "")
	require.NoError(t, flags.Parse(nil))

	v := NewViper()
	require.NoError(t, v.BindPFlag(ConfigPort, flags.Lookup(ConfigPort)))

	got, err := LoadSettings(v, path)
	require.NoError(t, err)
	assert.Equal(t, 1111, got.Port)
}

func TestLoadSettingsDotEnv(t *testing.T) {
	os.Unsetenv("SENSU_CLI_HOST")
	t.Cleanup(func() { os.Unsetenv("SENSU_CLI_HOST") })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SENSU_CLI_HOST=dotenv.example.com\n"), 0600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := LoadSettings(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "dotenv.example.com", got.Host)
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "port out of range", content: "port: 70000\n", wantErr: "port"},
		{name: "bad host", content: "host: \"not a host\"\n", wantErr: "host"},
		{name: "zero timeout", content: "connect_timeout: 0s\n", wantErr: "connect_timeout"},
		{name: "broken yaml", content: "host: [\n", wantErr: "reading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(NewViper(), writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWriteSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cli.yaml")

	require.NoError(t, WriteSampleConfig(path, false))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	err = WriteSampleConfig(path, false)
	assert.ErrorContains(t, err, "already exists")
	assert.NoError(t, WriteSampleConfig(path, true))

	got, err := LoadSettings(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, got.Host)
	assert.Equal(t, DefaultPort, got.Port)
	assert.Equal(t, DefaultReadTimeout, got.ReadTimeout)
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv(ConfigFileEnv, "/tmp/sensu-cli.yaml")
	assert.Equal(t, "/tmp/sensu-cli.yaml", ConfigPath())
}
