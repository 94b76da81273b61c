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

// Package ndc is a typed client for the NDC connector protocol.
//
// A connector exposes five operations over HTTP relative to a base URL:
// capability discovery (GET capabilities), schema retrieval (GET schema),
// query execution (POST query), mutation execution (POST mutation), and
// query explanation (POST explain). The client turns typed requests into
// HTTP exchanges, classifies each response as success or protocol error,
// and propagates OpenTelemetry trace context across the call boundary.
//
// Every call produces exactly one outcome: the typed success value, a
// *ConnectorError when the connector answered with a 4xx/5xx status and a
// well-formed error envelope, or a transport/decode error for everything
// that failed before both a status code and a decodable body were in hand.
//
// Example usage:
//
//	client, err := ndc.New("http://localhost:8080/ndc",
//	    ndc.WithUserAgent("my-engine/1.0"),
//	    ndc.WithHeader("Authorization", "Bearer "+token),
//	)
//	if err != nil {
//	    return err
//	}
//
//	caps, err := client.Capabilities(ctx)
package ndc
