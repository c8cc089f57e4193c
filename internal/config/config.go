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

// Package config provides configuration management for the canonerr demo
// server.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"
)

// Config holds configuration for the demo HTTP and gRPC servers.
type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string

	// GRPCPrefixes maps error-code prefixes to gRPC codes, see
	// mapper.WithGRPCPrefix.
	GRPCPrefixes map[string]codes.Code
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		HTTPAddr:        ":8080",
		GRPCAddr:        ":50051",
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// Load loads configuration using viper.
// Environment (CANONERR_ prefix) > config file > defaults precedence; CLI
// flags are applied by the caller.
func Load(configPath string) (*Config, error) {
	d := Default()
	v := viper.New()

	v.SetDefault("http.addr", d.HTTPAddr)
	v.SetDefault("grpc.addr", d.GRPCAddr)
	v.SetDefault("shutdown_timeout", d.ShutdownTimeout.String())
	v.SetDefault("log.level", d.LogLevel)
	v.SetDefault("log.format", d.LogFormat)

	v.SetEnvPrefix("CANONERR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	prefixes, err := parsePrefixes(v.GetStringMapString("mapper.prefixes"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        v.GetString("http.addr"),
		GRPCAddr:        v.GetString("grpc.addr"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        strings.ToLower(v.GetString("log.level")),
		LogFormat:       strings.ToLower(v.GetString("log.format")),
		GRPCPrefixes:    prefixes,
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks addresses, timeout and logging settings.
func Validate(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("http.addr must not be empty")
	}
	if cfg.GRPCAddr == "" {
		return fmt.Errorf("grpc.addr must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %v", cfg.ShutdownTimeout)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", cfg.LogFormat)
	}
	return nil
}

// Logger builds the slog logger described by the configuration.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level must be debug, info, warn or error, got %q", s)
}

// parsePrefixes decodes gRPC code names such as "FAILED_PRECONDITION".
func parsePrefixes(raw map[string]string) (map[string]codes.Code, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]codes.Code, len(raw))
	for prefix, name := range raw {
		var c codes.Code
		quoted := `"` + strings.ToUpper(strings.TrimSpace(name)) + `"`
		if err := c.UnmarshalJSON([]byte(quoted)); err != nil {
			return nil, fmt.Errorf("mapper.prefixes[%s]: %w", prefix, err)
		}
		out[prefix] = c
	}
	return out, nil
}
