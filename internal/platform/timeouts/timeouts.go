// Package timeouts defines shared timeout constants for the dashboard
// HTTP surface.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// OTelShutdown bounds the span flush performed when a command exits.
const OTelShutdown = 5 * time.Second
