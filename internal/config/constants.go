package config

import "time"

// Timeout constants used by the gateway client and the server.
const (
	GatewayRequestTimeout = 30 * time.Second // single REST call to the gateway
	WebSocketDialTimeout  = 10 * time.Second // gateway event stream handshake
	ReconnectDelay        = 5 * time.Second  // wait before re-dialing a dropped event stream
	ShutdownTimeout       = 5 * time.Second  // graceful HTTP shutdown
)
