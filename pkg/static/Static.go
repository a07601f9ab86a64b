package static

import "time"

// Heartbeat protocol tokens. These are application-level text messages so a
// browser client has to answer from script, a transport-level pong is not
// proof the page is still alive.
const (
	PING_MESSAGE = "ping"
	PONG_MESSAGE = "pong"
)

// Defaults for the process configuration.
const (
	DEFAULT_LISTEN    = "0.0.0.0:8765"
	DEFAULT_LOG_LEVEL = "info"
	DEFAULT_URL       = "ws://127.0.0.1:8765/ws"
)

const (
	DEFAULT_POLL_INTERVAL      = 500 * time.Millisecond
	DEFAULT_HEARTBEAT_INTERVAL = 15 * time.Second
	DEFAULT_HEARTBEAT_TIMEOUT  = 5 * time.Second
)
