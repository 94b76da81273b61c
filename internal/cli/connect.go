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

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/tombee/ndc-client-go/internal/config"
	"github.com/tombee/ndc-client-go/internal/log"
	"github.com/tombee/ndc-client-go/internal/tracing"
	"github.com/tombee/ndc-client-go/pkg/httpclient"
	"github.com/tombee/ndc-client-go/pkg/ndc"
)

// runtime is everything a subcommand needs to talk to a connector.
type runtime struct {
	cfg      *config.Config
	client   *ndc.Client
	provider *tracing.Provider
}

// connect assembles the runtime from the config file and flag
// overrides: logger, optional trace export, transport, and the
// connector client.
func (o *options) connect(ctx context.Context) (*runtime, func(), error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	// Flags win over the file.
	if o.endpoint != "" {
		cfg.Endpoint = o.endpoint
	}
	if o.timeout > 0 {
		cfg.HTTP.Timeout = o.timeout
	}
	if o.trace {
		cfg.Tracing.Enabled = true
	}
	if o.metricsListen != "" {
		cfg.MetricsListen = o.metricsListen
	}
	flagHeaders, err := parseHeaders(o.headers)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Headers == nil {
		cfg.Headers = make(map[string]string)
	}
	for name, value := range flagHeaders {
		cfg.Headers[name] = value
	}

	if cfg.Endpoint == "" {
		return nil, nil, fmt.Errorf("no connector endpoint: pass --endpoint or set endpoint in the config file")
	}

	log.Setup(&cfg.Log)

	// Bind the scrape address first so a bad address fails before any
	// global telemetry state is installed.
	var metricsListener net.Listener
	if cfg.MetricsListen != "" {
		metricsListener, err = net.Listen("tcp", cfg.MetricsListen)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to listen on %s for metrics: %w", cfg.MetricsListen, err)
		}
	}

	cleanup := func() {}
	var provider *tracing.Provider
	if cfg.Tracing.Enabled || metricsListener != nil {
		tcfg := cfg.Tracing
		if !cfg.Tracing.Enabled {
			// Metrics-only mode: keep the meter provider, skip span export.
			tcfg.Exporter = tracing.ExporterNone
		}
		provider, err = tracing.NewProvider(ctx, tcfg)
		if err != nil {
			if metricsListener != nil {
				_ = metricsListener.Close()
			}
			return nil, nil, fmt.Errorf("failed to set up tracing: %w", err)
		}
		cleanup = func() {
			_ = provider.Shutdown(context.Background())
		}
	}

	if metricsListener != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", provider.MetricsHandler())
		server := &http.Server{Handler: mux}
		go func() {
			if err := server.Serve(metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", log.Error(err))
			}
		}()
		slog.Info("serving metrics", "address", metricsListener.Addr().String())

		providerCleanup := cleanup
		cleanup = func() {
			_ = server.Shutdown(context.Background())
			providerCleanup()
		}
	}

	transport, err := httpclient.New(httpclient.Config{
		Timeout:       cfg.HTTP.Timeout,
		RetryAttempts: cfg.HTTP.RetryAttempts,
		RetryBackoff:  cfg.HTTP.RetryBackoff,
		MaxBackoff:    cfg.HTTP.MaxBackoff,
		UserAgent:     cfg.UserAgent,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	client, err := ndc.New(cfg.Endpoint,
		ndc.WithHTTPClient(transport),
		ndc.WithUserAgent(cfg.UserAgent),
		ndc.WithHeaders(cfg.Headers),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &runtime{cfg: cfg, client: client, provider: provider}, cleanup, nil
}

// parseHeaders converts repeated name=value flags into a header map.
func parseHeaders(raw []string) (map[string]string, error) {
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected name=value", h)
		}
		headers[name] = value
	}
	return headers, nil
}
