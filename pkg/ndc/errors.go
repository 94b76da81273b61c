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
	"errors"
	"fmt"
)

// URLError reports a base URL that could not be combined with an
// operation path. No network exchange is attempted when this occurs.
type URLError struct {
	// Base is the configured base URL.
	Base string

	// Path is the operation path that failed to resolve.
	Path string

	// Reason explains why resolution failed.
	Reason string
}

// Error implements the error interface.
func (e *URLError) Error() string {
	return fmt.Sprintf("cannot resolve %q against base URL %q: %s", e.Path, e.Base, e.Reason)
}

// TransportError reports a failure to complete the HTTP exchange:
// connection, TLS, timeout, cancellation, or reading the response body.
type TransportError struct {
	// URL is the endpoint the exchange was issued against.
	URL string

	// Err is the underlying transport failure.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a payload that could not be serialized or
// deserialized. This covers request bodies that fail to marshal,
// response bodies that are not valid JSON, success bodies that do not
// match the operation's response type, and error bodies that do not
// match the error envelope.
type DecodeError struct {
	// What names the payload that failed, e.g. "success response".
	What string

	// Err is the underlying encoding error.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.What, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConnectorError reports a protocol-level failure: the connector
// answered with a status in the 4xx/5xx range and a well-formed error
// envelope. It is a recognized outcome, not a transport fault.
type ConnectorError struct {
	// Status is the HTTP status code of the response.
	Status int

	// Response is the decoded error envelope.
	Response *ErrorResponse
}

// Error implements the error interface.
func (e *ConnectorError) Error() string {
	if e.Response != nil && e.Response.Message != "" {
		return fmt.Sprintf("connector returned %d: %s", e.Status, e.Response.Message)
	}
	return fmt.Sprintf("connector returned %d", e.Status)
}

// AsConnectorError returns the *ConnectorError in err's chain, if any.
func AsConnectorError(err error) (*ConnectorError, bool) {
	var ce *ConnectorError
	ok := errors.As(err, &ce)
	return ce, ok
}
