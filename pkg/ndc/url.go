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
	"net/url"
	"strings"
)

// appendPath resolves an operation path against the base URL.
//
// A base whose final path segment is non-empty gets a trailing slash
// before resolution, so "http://h/ndc" and "http://h/ndc/" both join
// with "capabilities" to "http://h/ndc/capabilities". Bases without a
// path ("http://h") join to "http://h/capabilities".
func appendPath(base *url.URL, path string) (*url.URL, error) {
	if base.Opaque != "" || base.Host == "" {
		return nil, &URLError{
			Base:   base.String(),
			Path:   path,
			Reason: "base is not a valid hierarchical URL",
		}
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, &URLError{
			Base:   base.String(),
			Path:   path,
			Reason: err.Error(),
		}
	}

	joined := *base
	if !strings.HasSuffix(joined.Path, "/") {
		joined.Path += "/"
	}

	return joined.ResolveReference(ref), nil
}
