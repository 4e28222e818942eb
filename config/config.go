/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads mapper settings from a file and the environment.
//
// A typical YAML file:
//
//	http:
//	  error: 500
//	grpc:
//	  conflict: already_exists
//	created: 201
//	prefixes:
//	  - status: invalid
//	    reason: user.email.taken
//	    http: 409
//	    grpc: already_exists
//
// The http.*, grpc.* and created keys can be set or overridden with
// DRESULT_* variables, e.g. DRESULT_HTTP_NOT_FOUND=410 or
// DRESULT_CREATED=200. Prefix rules are read from the file only.
package config

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/status"
)

// DefaultEnvPrefix is the prefix of environment variables read by Load.
const DefaultEnvPrefix = "DRESULT"

// Config holds mapper settings keyed by status name.
type Config struct {
	// HTTP replaces the default HTTP status per status name.
	HTTP map[string]int `mapstructure:"http"`
	// GRPC replaces the default gRPC code per status name. Codes are given
	// by name ("not_found", "ALREADY_EXISTS") or number.
	GRPC map[string]string `mapstructure:"grpc"`
	// Created is the HTTP status for Ok outcomes with a location. Zero
	// keeps the mapper default.
	Created int `mapstructure:"created"`
	// Prefixes are reason-prefix rules.
	Prefixes []PrefixRule `mapstructure:"prefixes"`
}

// PrefixRule is one reason-prefix rule. At least one of HTTP and GRPC must
// be set.
type PrefixRule struct {
	Status string `mapstructure:"status"`
	Reason string `mapstructure:"reason"`
	HTTP   int    `mapstructure:"http"`
	GRPC   string `mapstructure:"grpc"`
}

type loadConfig struct {
	envPrefix  string
	configType string
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

// WithEnvPrefix replaces DefaultEnvPrefix.
func WithEnvPrefix(prefix string) LoadOption {
	return func(c *loadConfig) { c.envPrefix = prefix }
}

// WithConfigType sets the file format ("yaml", "json", "toml") for paths
// without a telling extension.
func WithConfigType(typ string) LoadOption {
	return func(c *loadConfig) { c.configType = typ }
}

// Load reads the file at path, when path is not empty, and applies
// environment overrides.
func Load(path string, opts ...LoadOption) (Config, error) {
	lc := loadConfig{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if lc.configType != "" {
			v.SetConfigType(lc.configType)
		}
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(lc.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Register every settable key so variables count even when the file
	// does not mention them.
	_ = v.BindEnv("created")
	for _, s := range status.All() {
		_ = v.BindEnv("http." + s.String())
		_ = v.BindEnv("grpc." + s.String())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into mapper options. Status names
// are parsed with status.Parse; unknown names and codes are errors.
func (c Config) Options() ([]mapper.Option, error) {
	var opts []mapper.Option

	for _, name := range slices.Sorted(maps.Keys(c.HTTP)) {
		s, err := parseStatus("http", name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mapper.WithHTTPDefault(s, c.HTTP[name]))
	}
	for _, name := range slices.Sorted(maps.Keys(c.GRPC)) {
		s, err := parseStatus("grpc", name)
		if err != nil {
			return nil, err
		}
		code, err := ParseCode(c.GRPC[name])
		if err != nil {
			return nil, fmt.Errorf("config: grpc.%s: %w", name, err)
		}
		opts = append(opts, mapper.WithGRPCDefault(s, code))
	}
	if c.Created != 0 {
		opts = append(opts, mapper.WithCreatedStatus(c.Created))
	}
	for i, p := range c.Prefixes {
		s, err := parseStatus(fmt.Sprintf("prefixes[%d]", i), p.Status)
		if err != nil {
			return nil, err
		}
		if p.HTTP == 0 && p.GRPC == "" {
			return nil, fmt.Errorf("config: prefixes[%d]: neither http nor grpc is set", i)
		}
		if p.HTTP != 0 {
			opts = append(opts, mapper.WithHTTPPrefix(s, p.Reason, p.HTTP))
		}
		if p.GRPC != "" {
			code, err := ParseCode(p.GRPC)
			if err != nil {
				return nil, fmt.Errorf("config: prefixes[%d]: %w", i, err)
			}
			opts = append(opts, mapper.WithGRPCPrefix(s, p.Reason, code))
		}
	}
	return opts, nil
}

// Mapper builds a mapper from the configuration.
func (c Config) Mapper() (apis.Mapper, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}

func parseStatus(where, name string) (status.Status, error) {
	s, err := status.Parse(name)
	if err != nil {
		return s, fmt.Errorf("config: %s: %w: %q", where, err, name)
	}
	return s, nil
}

// ParseCode parses a gRPC code given by number or by name. Names are case
// insensitive and may use '-' or ' ' instead of '_', e.g. "not-found".
func ParseCode(s string) (codes.Code, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	if name == "CANCELED" {
		name = "CANCELLED"
	}
	var c codes.Code
	in := name
	if _, err := strconv.ParseUint(name, 10, 32); err != nil {
		in = strconv.Quote(name)
	}
	if err := c.UnmarshalJSON([]byte(in)); err != nil {
		return 0, fmt.Errorf("invalid gRPC code %q", s)
	}
	return c, nil
}
