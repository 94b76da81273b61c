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

package ndc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Configuration holds the settings shared by every call: the transport,
// the connector's base URL, an optional user agent, and static headers
// sent on every request. It is constructed once per client and never
// mutated afterwards, so concurrent calls need no locking.
type Configuration struct {
	// HTTPClient executes the exchanges. Defaults to a client with
	// http.DefaultTransport when not set.
	HTTPClient *http.Client

	// BaseURL is the connector's base endpoint. Operation paths are
	// resolved relative to it.
	BaseURL *url.URL

	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string

	// Headers are static headers applied to every request. They are
	// merged after trace-context and User-Agent headers, so a colliding
	// name wins over both.
	Headers map[string]string
}

// Option configures a Client.
type Option func(*Configuration)

// WithHTTPClient sets the HTTP client used for all exchanges.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *Configuration) {
		cfg.HTTPClient = client
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(cfg *Configuration) {
		cfg.UserAgent = userAgent
	}
}

// WithHeader adds a static header sent on every request.
func WithHeader(name, value string) Option {
	return func(cfg *Configuration) {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		cfg.Headers[name] = value
	}
}

// WithHeaders adds a set of static headers sent on every request.
func WithHeaders(headers map[string]string) Option {
	return func(cfg *Configuration) {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string, len(headers))
		}
		for name, value := range headers {
			cfg.Headers[name] = value
		}
	}
}

// JSONHeaderValue serializes a structured value into a header-safe
// string. Values that cannot be serialized become the empty string.
func JSONHeaderValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// Validate checks that the configuration can issue requests.
func (cfg *Configuration) Validate() error {
	if cfg.BaseURL == nil {
		return fmt.Errorf("base URL is required")
	}
	if cfg.BaseURL.Scheme != "http" && cfg.BaseURL.Scheme != "https" {
		return fmt.Errorf("base URL scheme must be http or https, got %q", cfg.BaseURL.Scheme)
	}
	return nil
}
