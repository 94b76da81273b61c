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

import "encoding/json"

// isProtocolError reports whether an HTTP status code represents a
// protocol-level failure. Only the client-error (4xx) and server-error
// (5xx) ranges count; informational, success, and redirect codes all
// take the success path.
func isProtocolError(status int) bool {
	return status >= 400 && status <= 599
}

// classifyResponse decides the outcome of a completed exchange from
// the status code and raw body, then finishes decoding into the
// concrete type. It performs no I/O and is shared by every operation.
//
// A 4xx/5xx status decodes the body as the error envelope and yields a
// *ConnectorError; an envelope that does not decode is a decode error,
// not a downgraded generic failure. Any other status decodes the body
// as T; a mismatch there is likewise a decode error.
func classifyResponse[T any](status int, body []byte) (*T, error) {
	if isProtocolError(status) {
		var envelope ErrorResponse
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, &DecodeError{What: "error response", Err: err}
		}
		return nil, &ConnectorError{Status: status, Response: &envelope}
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{What: "success response", Err: err}
	}
	return &result, nil
}
