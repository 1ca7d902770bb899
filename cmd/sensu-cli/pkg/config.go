// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sensucli

import (
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	validationis "github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "SENSU_CLI"
	// ConfigFileEnv names the environment variable holding the config file path.
	ConfigFileEnv = EnvPrefix + "_CONFIG"

	// ConfigHost specifies the API host
	ConfigHost = "host"
	// ConfigPort specifies the API port
	ConfigPort = "port"
	// ConfigSSL specifies whether the API is reached over HTTPS
	ConfigSSL = "ssl"
	// ConfigConnectTimeout bounds connection establishment
	ConfigConnectTimeout = "connect_timeout"
	// ConfigReadTimeout bounds the wait for a response
	ConfigReadTimeout = "read_timeout"
)

// Defaults applied when no other source sets a value.
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 4567
	DefaultConnectTimeout = 5 * time.Second
	DefaultReadTimeout    = 15 * time.Second
)

// Settings describes how to reach the API. It is read-only once loaded.
type Settings struct {
	Host           string        `mapstructure:"host" json:"host"`
	Port           int           `mapstructure:"port" json:"port"`
	SSL            bool          `mapstructure:"ssl" json:"ssl"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" json:"connect_timeout"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
}

// BaseURL returns the scheme and authority requests are sent to.
func (s Settings) BaseURL() string {
	scheme := "http"
	if s.SSL {
		scheme = "https"
	}
	return scheme + "://" + net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Validate checks that the settings can produce a usable client.
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Host, validation.Required, validationis.Host),
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.ConnectTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&s.ReadTimeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// ConfigDir returns the ~/.sensu directory.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sensu")
}

// ConfigPath returns the config file path, honoring SENSU_CLI_CONFIG.
func ConfigPath() string {
	if p := os.Getenv(ConfigFileEnv); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "cli.yaml")
}

// NewViper returns a viper instance with the CLI's defaults and environment
// binding. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigHost, DefaultHost)
	v.SetDefault(ConfigPort, DefaultPort)
	v.SetDefault(ConfigSSL, false)
	v.SetDefault(ConfigConnectTimeout, DefaultConnectTimeout)
	v.SetDefault(ConfigReadTimeout, DefaultReadTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings resolves settings from a .env file, the config file at path,
// and whatever env and flags are bound to v. Missing files are not an error.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "loading .env")
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		err := v.ReadInConfig()
		if _, ok := err.(*fs.PathError); ok {
			log.Debug().Str("path", path).Msg("config file not found, using defaults")
		} else if err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "decoding settings")
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	log.Debug().
		Str("host", s.Host).
		Int("port", s.Port).
		Bool("ssl", s.SSL).
		Msg("settings loaded")
	return &s, nil
}

// WriteSampleConfig writes SampleConfig to path. An existing file is only
// replaced when force is set.
func WriteSampleConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(SampleConfig), 0600); err != nil {
		return errors.Wrap(err, "writing config")
	}
	return nil
}

// SampleConfig is the file written by `sensu-cli init`.
const SampleConfig = `# sensu-cli configuration
#
# Every key can also be set through the environment, e.g. SENSU_CLI_HOST,
# or on the command line, e.g. --host.
#
host: 127.0.0.1
port: 4567

# Use HTTPS. The server certificate is not verified.
ssl: false

connect_timeout: 5s
read_timeout: 15s
`
