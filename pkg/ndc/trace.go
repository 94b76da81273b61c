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
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope for client spans.
const tracerName = "ndc.client"

// injectTraceContext serializes the trace context from ctx into the
// header set so the connector can continue the distributed trace.
// With no active trace context this writes nothing.
func injectTraceContext(ctx context.Context, header http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
}

// observeError records err as an error status on the span active in
// ctx and returns err unchanged. With no active span this is a no-op.
// Observation never alters the error's content or control flow.
func observeError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	trace.SpanFromContext(ctx).SetStatus(codes.Error, err.Error())
	return err
}
