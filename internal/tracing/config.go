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

package tracing

import (
	"fmt"
	"time"
)

// Exporter names the supported span export destinations.
type Exporter string

const (
	// ExporterStdout writes spans to stderr for local debugging.
	ExporterStdout Exporter = "stdout"
	// ExporterOTLPHTTP exports spans over OTLP/HTTP.
	ExporterOTLPHTTP Exporter = "otlp-http"
	// ExporterOTLPGRPC exports spans over OTLP/gRPC.
	ExporterOTLPGRPC Exporter = "otlp-grpc"
	// ExporterNone disables span export while keeping propagation active.
	ExporterNone Exporter = "none"
)

// Config holds observability configuration.
type Config struct {
	// Enabled controls whether tracing is active.
	Enabled bool `yaml:"enabled"`

	// ServiceName identifies this process in traces.
	// Default: "ndc-client".
	ServiceName string `yaml:"service_name,omitempty"`

	// ServiceVersion is the application version.
	ServiceVersion string `yaml:"service_version,omitempty"`

	// Exporter selects the span export destination.
	// Default: stdout.
	Exporter Exporter `yaml:"exporter,omitempty"`

	// Endpoint is the OTLP collector endpoint, host:port.
	// Required for the otlp-http and otlp-grpc exporters.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Insecure disables TLS on OTLP export. Local collectors only.
	Insecure bool `yaml:"insecure,omitempty"`

	// SampleRate is the fraction of traces to sample (0.0 - 1.0).
	// Default: 1.0 (sample everything).
	SampleRate float64 `yaml:"sample_rate,omitempty"`

	// BatchTimeout is how often the batch processor flushes spans.
	// Default: 5s.
	BatchTimeout time.Duration `yaml:"batch_timeout,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "ndc-client",
		ServiceVersion: "dev",
		Exporter:       ExporterStdout,
		SampleRate:     1.0,
		BatchTimeout:   5 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Exporter {
	case ExporterStdout, ExporterNone, "":
	case ExporterOTLPHTTP, ExporterOTLPGRPC:
		if c.Endpoint == "" {
			return fmt.Errorf("endpoint is required for exporter %q", c.Exporter)
		}
	default:
		return fmt.Errorf("unknown exporter %q", c.Exporter)
	}

	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("sample_rate must be within [0, 1], got %v", c.SampleRate)
	}

	return nil
}
