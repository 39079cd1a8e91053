// Package timeouts defines shared timeout constants used by the registry
// server and its clients.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the registry.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single registry call issued by a
// command-line client, the seeder or the MCP bridge.
const GRPCRequest = 5 * time.Second

// ReadHeader limits how long the HTTP gateway waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
