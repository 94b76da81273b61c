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

// Package tracing sets up the OpenTelemetry SDK for the CLI and
// provides correlation IDs and trace-context propagation helpers.
//
// The connector client itself only reads the ambient propagator and
// the span on its context; installing a provider from this package is
// what makes those ambient pieces real. Without it, tracing silently
// does nothing, which is the intended zero-configuration behavior.
package tracing
