// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tombee/ndc-client-go/internal/log"
	"github.com/tombee/ndc-client-go/internal/tracing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
endpoint: http://localhost:8100/ndc
user_agent: engine/3.1
headers:
  Authorization: Bearer secret
  X-Tenant: acme
http:
  timeout: 10s
  retry_attempts: 5
tracing:
  enabled: true
  exporter: otlp-grpc
  endpoint: localhost:4317
  insecure: true
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8100/ndc", cfg.Endpoint)
	assert.Equal(t, "engine/3.1", cfg.UserAgent)
	assert.Equal(t, "acme", cfg.Headers["X-Tenant"])
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 5, cfg.HTTP.RetryAttempts)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, tracing.ExporterOTLPGRPC, cfg.Tracing.Exporter)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DefaultsSurvivePartialFile(t *testing.T) {
	path := writeConfig(t, `endpoint: http://localhost:8100`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 3, cfg.HTTP.RetryAttempts)
	assert.Equal(t, "ndc-cli/1.0", cfg.UserAgent)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestDefault_LogFromEnv(t *testing.T) {
	t.Setenv("NDC_LOG_LEVEL", "debug")
	t.Setenv("NDC_LOG_FORMAT", "json")

	cfg := Default()
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, log.FormatJSON, cfg.Log.Format)
}

// The config file wins over environment defaults.
func TestLoad_FileOverridesEnvLogLevel(t *testing.T) {
	t.Setenv("NDC_LOG_LEVEL", "debug")
	path := writeConfig(t, `
endpoint: http://localhost:8100
log:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "endpoint: [not, closed")
	_, err := Load(path)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty endpoint allowed",
			mutate:  func(c *Config) { c.Endpoint = "" },
			wantErr: false,
		},
		{
			name:    "bad endpoint scheme",
			mutate:  func(c *Config) { c.Endpoint = "ftp://x" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.HTTP.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name: "invalid tracing",
			mutate: func(c *Config) {
				c.Tracing.Exporter = tracing.ExporterOTLPHTTP
				c.Tracing.Endpoint = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
