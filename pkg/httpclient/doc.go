// Package httpclient builds the HTTP clients handed to the connector
// client, with consistent timeout, retry, and observability behavior.
//
// The factory composes transport layers to provide:
//   - Automatic retry with exponential backoff and jitter
//   - Request logging with sanitized URLs (sensitive parameters redacted)
//   - User-Agent header injection
//   - Correlation ID propagation for distributed tracing
//   - TLS 1.2 minimum (TLS 1.3 preferred)
//   - Connection pooling for performance
//
// # Usage
//
// Create a client and hand it to the connector client:
//
//	cfg := httpclient.DefaultConfig()
//	cfg.UserAgent = "my-engine/2.0"
//	client, err := httpclient.New(cfg)
//	if err != nil {
//	    return err
//	}
//	conn, err := ndc.New(endpoint, ndc.WithHTTPClient(client))
//
// Retries happen below the connector client, at the transport layer:
// the connector client still observes exactly one exchange per call.
// Only idempotent methods are retried unless AllowNonIdempotentRetry
// is set, so query and mutation POSTs are never replayed by default.
package httpclient
