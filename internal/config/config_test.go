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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	if cfg.HTTPAddr != want.HTTPAddr || cfg.GRPCAddr != want.GRPCAddr {
		t.Errorf("addresses = %q %q, want %q %q", cfg.HTTPAddr, cfg.GRPCAddr, want.HTTPAddr, want.GRPCAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("log = %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.GRPCPrefixes != nil {
		t.Errorf("expected no prefixes, got %v", cfg.GRPCPrefixes)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CANONERR_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("CANONERR_LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9090" {
		t.Errorf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canonerr.yaml")
	content := `
grpc:
  addr: ":6000"
shutdown_timeout: 3s
log:
  format: text
mapper:
  prefixes:
    PAYMENT: failed_precondition
    AUTH_*_EXPIRED: UNAUTHENTICATED
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GRPCAddr != ":6000" || cfg.ShutdownTimeout != 3*time.Second || cfg.LogFormat != "text" {
		t.Errorf("unexpected config %+v", cfg)
	}
	// viper lower-cases keys; the mapper normalizes them back.
	if got := cfg.GRPCPrefixes["payment"]; got != codes.FailedPrecondition {
		t.Errorf("payment prefix = %v", got)
	}
	if got := cfg.GRPCPrefixes["auth_*_expired"]; got != codes.Unauthenticated {
		t.Errorf("auth prefix = %v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("bad prefix code", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("mapper:\n  prefixes:\n    PAYMENT: NOT_A_CODE\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for unknown gRPC code")
		}
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("CANONERR_LOG_LEVEL", "loud")
		if _, err := Load(""); err == nil {
			t.Error("expected error for bad log level")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty http addr", func(c *Config) { c.HTTPAddr = "" }},
		{"empty grpc addr", func(c *Config) { c.GRPCAddr = "" }},
		{"zero timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
	if err := Validate(Default()); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "warn"

	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("unexpected log output %q", out)
	}

	buf.Reset()
	cfg.LogFormat = "text"
	cfg.Logger(&buf).Warn("plain")
	if !strings.Contains(buf.String(), "msg=plain") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}
