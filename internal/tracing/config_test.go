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

import "testing"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "none exporter needs no endpoint",
			mutate:  func(c *Config) { c.Exporter = ExporterNone },
			wantErr: false,
		},
		{
			name:    "otlp-http without endpoint",
			mutate:  func(c *Config) { c.Exporter = ExporterOTLPHTTP },
			wantErr: true,
		},
		{
			name: "otlp-grpc with endpoint",
			mutate: func(c *Config) {
				c.Exporter = ExporterOTLPGRPC
				c.Endpoint = "localhost:4317"
			},
			wantErr: false,
		},
		{
			name:    "unknown exporter",
			mutate:  func(c *Config) { c.Exporter = "jaeger" },
			wantErr: true,
		},
		{
			name:    "sample rate above 1",
			mutate:  func(c *Config) { c.SampleRate = 1.5 },
			wantErr: true,
		},
		{
			name:    "negative sample rate",
			mutate:  func(c *Config) { c.SampleRate = -0.1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
