// Package common contains small shared constants and helpers used across
// catcli components.
package common

const (
	// RequestIDHeaderName carries a per-request correlation id on every
	// outbound HTTP call.
	RequestIDHeaderName = "X-Request-Id"

	// APIKeyHeaderName authenticates calls to the cat-data API.
	APIKeyHeaderName = "x-api-key"
)
