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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// Recorded calls must be observable through the Prometheus scrape
// endpoint, not just held in the meter provider.
func TestProvider_MetricsHandlerServesRecordedCalls(t *testing.T) {
	ctx := context.Background()

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Exporter = ExporterNone

	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer func() {
		_ = provider.Shutdown(ctx)
	}()

	provider.Metrics().RecordCall(ctx, "capabilities_get", 15*time.Millisecond, nil)

	server := httptest.NewServer(provider.MetricsHandler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from scrape endpoint, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read scrape body: %v", err)
	}
	if !strings.Contains(string(body), "ndc_client_calls_total") {
		t.Errorf("scrape output missing ndc_client_calls_total:\n%s", body)
	}
}
