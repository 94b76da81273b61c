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
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CallMetrics records connector call outcomes on the meter provider.
type CallMetrics struct {
	meter metric.Meter

	callsTotal   metric.Int64Counter
	errorsTotal  metric.Int64Counter
	callDuration metric.Float64Histogram
}

// NewCallMetrics creates a call metrics collector using the given meter provider.
func NewCallMetrics(meterProvider metric.MeterProvider) (*CallMetrics, error) {
	meter := meterProvider.Meter("ndc-client")

	m := &CallMetrics{meter: meter}

	var err error

	m.callsTotal, err = meter.Int64Counter(
		"ndc_client_calls_total",
		metric.WithDescription("Total number of connector calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	m.errorsTotal, err = meter.Int64Counter(
		"ndc_client_errors_total",
		metric.WithDescription("Total number of failed connector calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	m.callDuration, err = meter.Float64Histogram(
		"ndc_client_call_duration_seconds",
		metric.WithDescription("Connector call duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordCall records one completed connector call.
func (m *CallMetrics) RecordCall(ctx context.Context, op string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("operation", op))

	m.callsTotal.Add(ctx, 1, attrs)
	if err != nil {
		m.errorsTotal.Add(ctx, 1, attrs)
	}
	m.callDuration.Record(ctx, duration.Seconds(), attrs)
}
