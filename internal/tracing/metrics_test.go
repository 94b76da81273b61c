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
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestCallMetrics_RecordCall(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := NewCallMetrics(provider)
	if err != nil {
		t.Fatalf("NewCallMetrics() error = %v", err)
	}

	ctx := context.Background()
	metrics.RecordCall(ctx, "query_post", 120*time.Millisecond, nil)
	metrics.RecordCall(ctx, "query_post", 80*time.Millisecond, errors.New("boom"))
	metrics.RecordCall(ctx, "schema_get", 10*time.Millisecond, nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	sums := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				var total int64
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
				sums[m.Name] = total
			}
		}
	}

	if sums["ndc_client_calls_total"] != 3 {
		t.Errorf("expected 3 calls recorded, got %d", sums["ndc_client_calls_total"])
	}
	if sums["ndc_client_errors_total"] != 1 {
		t.Errorf("expected 1 error recorded, got %d", sums["ndc_client_errors_total"])
	}
}
