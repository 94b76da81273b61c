package httpclient

import (
	"testing"
	"time"
)

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
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative retry attempts",
			mutate:  func(c *Config) { c.RetryAttempts = -1 },
			wantErr: true,
		},
		{
			name: "zero backoff with retries",
			mutate: func(c *Config) {
				c.RetryAttempts = 2
				c.RetryBackoff = 0
			},
			wantErr: true,
		},
		{
			name: "max backoff below base backoff",
			mutate: func(c *Config) {
				c.RetryBackoff = time.Second
				c.MaxBackoff = 100 * time.Millisecond
			},
			wantErr: true,
		},
		{
			name:    "empty user agent",
			mutate:  func(c *Config) { c.UserAgent = "" },
			wantErr: true,
		},
		{
			name: "no retries skips backoff validation",
			mutate: func(c *Config) {
				c.RetryAttempts = 0
				c.RetryBackoff = 0
			},
			wantErr: false,
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
