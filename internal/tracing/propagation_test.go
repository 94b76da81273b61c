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
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestW3CPropagator_RoundTrip(t *testing.T) {
	propagator := W3CPropagator()

	provider := sdktrace.NewTracerProvider()
	ctx, span := provider.Tracer("test").Start(context.Background(), "test-op")
	defer span.End()

	header := make(http.Header)
	propagator.Inject(ctx, propagation.HeaderCarrier(header))

	if header.Get("Traceparent") == "" {
		t.Fatal("expected traceparent header after injection")
	}

	extracted := propagator.Extract(context.Background(), propagation.HeaderCarrier(header))
	got := trace.SpanContextFromContext(extracted)
	want := span.SpanContext()

	if got.TraceID() != want.TraceID() {
		t.Errorf("trace ID not preserved: got %s, want %s", got.TraceID(), want.TraceID())
	}
}

func TestW3CPropagator_NoActiveSpan(t *testing.T) {
	propagator := W3CPropagator()

	header := make(http.Header)
	propagator.Inject(context.Background(), propagation.HeaderCarrier(header))

	if got := header.Get("Traceparent"); got != "" {
		t.Errorf("expected no traceparent without an active span, got %q", got)
	}
}
