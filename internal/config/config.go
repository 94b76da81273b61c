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

// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/tombee/ndc-client-go/internal/log"
	"github.com/tombee/ndc-client-go/internal/tracing"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	// Endpoint is the connector's base URL.
	Endpoint string `yaml:"endpoint"`

	// UserAgent overrides the User-Agent header sent to the connector.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Headers are static headers sent on every request.
	Headers map[string]string `yaml:"headers,omitempty"`

	// HTTP configures the transport.
	HTTP HTTPConfig `yaml:"http,omitempty"`

	// Tracing configures OpenTelemetry export.
	Tracing tracing.Config `yaml:"tracing,omitempty"`

	// MetricsListen, when set, serves the Prometheus scrape endpoint
	// on this address for the duration of a command.
	MetricsListen string `yaml:"metrics_listen,omitempty"`

	// Log configures structured logging.
	Log log.Config `yaml:"log,omitempty"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Timeout is the total request timeout. Default: 30s.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// RetryAttempts is the maximum number of retry attempts for
	// idempotent requests. Default: 3.
	RetryAttempts int `yaml:"retry_attempts,omitempty"`

	// RetryBackoff is the initial backoff before the first retry.
	// Default: 100ms.
	RetryBackoff time.Duration `yaml:"retry_backoff,omitempty"`

	// MaxBackoff caps the backoff delay. Default: 30s.
	MaxBackoff time.Duration `yaml:"max_backoff,omitempty"`
}

// Default returns the configuration used when no file is present.
// Logging defaults honor the NDC_DEBUG, NDC_LOG_LEVEL, and
// NDC_LOG_FORMAT environment variables; a config file overrides them.
func Default() *Config {
	return &Config{
		UserAgent: "ndc-cli/1.0",
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			RetryAttempts: 3,
			RetryBackoff:  100 * time.Millisecond,
			MaxBackoff:    30 * time.Second,
		},
		Tracing: tracing.DefaultConfig(),
		Log:     *log.FromEnv(),
	}
}

// Load reads and validates a configuration file. Fields absent from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency. The endpoint may
// still be empty here; the CLI requires it per command, where a flag
// can supply it.
func (c *Config) Validate() error {
	if c.Endpoint != "" {
		parsed, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("%w: endpoint: %v", ErrInvalidConfig, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("%w: endpoint scheme must be http or https, got %q", ErrInvalidConfig, parsed.Scheme)
		}
	}

	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("%w: http.timeout must not be negative", ErrInvalidConfig)
	}
	if c.HTTP.RetryAttempts < 0 {
		return fmt.Errorf("%w: http.retry_attempts must not be negative", ErrInvalidConfig)
	}

	if err := c.Tracing.Validate(); err != nil {
		return fmt.Errorf("%w: tracing: %v", ErrInvalidConfig, err)
	}

	return nil
}
