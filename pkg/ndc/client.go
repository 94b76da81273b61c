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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// operation describes one remote call: its span name, HTTP method, and
// path relative to the base URL.
type operation struct {
	name   string
	method string
	path   string
}

var (
	opCapabilities = operation{"capabilities_get", http.MethodGet, "capabilities"}
	opSchema       = operation{"schema_get", http.MethodGet, "schema"}
	opQuery        = operation{"query_post", http.MethodPost, "query"}
	opMutation     = operation{"mutation_post", http.MethodPost, "mutation"}
	opExplain      = operation{"explain_post", http.MethodPost, "explain"}
)

// Client is a client for one connector. It is safe for concurrent use;
// all per-call state lives on the stack of the call.
type Client struct {
	cfg    Configuration
	tracer trace.Tracer
}

// New creates a connector client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	cfg := Configuration{BaseURL: parsed}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Transport: http.DefaultTransport}
	}

	return &Client{
		cfg:    cfg,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Configuration returns a copy of the client's configuration.
func (c *Client) Configuration() Configuration {
	return c.cfg
}

// Capabilities fetches the connector's capability descriptor.
func (c *Client) Capabilities(ctx context.Context) (*CapabilitiesResponse, error) {
	return doRequest[CapabilitiesResponse](ctx, c, opCapabilities, nil)
}

// Schema fetches the connector's schema descriptor.
func (c *Client) Schema(ctx context.Context) (*SchemaResponse, error) {
	return doRequest[SchemaResponse](ctx, c, opSchema, nil)
}

// Query executes a query request against the connector.
func (c *Client) Query(ctx context.Context, request *QueryRequest) (*QueryResponse, error) {
	return doRequest[QueryResponse](ctx, c, opQuery, request)
}

// Mutation executes a mutation request against the connector.
func (c *Client) Mutation(ctx context.Context, request *MutationRequest) (*MutationResponse, error) {
	return doRequest[MutationResponse](ctx, c, opMutation, request)
}

// Explain asks the connector to explain how it would execute a query.
func (c *Client) Explain(ctx context.Context, request *QueryRequest) (*ExplainResponse, error) {
	return doRequest[ExplainResponse](ctx, c, opExplain, request)
}

// doRequest is the shared dispatch path for all five operations. It
// resolves the endpoint, builds and decorates the request, executes
// exactly one exchange, and classifies the outcome. Every failure is
// recorded on the active span exactly once before it propagates.
func doRequest[T any](ctx context.Context, c *Client, op operation, payload any) (*T, error) {
	ctx, span := c.tracer.Start(ctx, op.name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	endpoint, err := appendPath(c.cfg.BaseURL, op.path)
	if err != nil {
		return nil, observeError(ctx, err)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, observeError(ctx, &DecodeError{What: "request body", Err: err})
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, op.method, endpoint.String(), body)
	if err != nil {
		return nil, observeError(ctx, &TransportError{URL: endpoint.String(), Err: err})
	}

	// Merge order: trace context first, then User-Agent, then static
	// headers. Later writes win on a colliding name; collisions are not
	// expected in practice.
	injectTraceContext(ctx, req.Header)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range c.cfg.Headers {
		req.Header.Set(name, value)
	}

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, observeError(ctx, &TransportError{URL: endpoint.String(), Err: err})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, observeError(ctx, &TransportError{URL: endpoint.String(), Err: err})
	}

	result, err := classifyResponse[T](resp.StatusCode, raw)
	if err != nil {
		return nil, observeError(ctx, err)
	}
	return result, nil
}
