package session

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/wstail/wstail/pkg/configuration"
)

type State int32

const (
	AwaitingRequest State = iota
	Validating
	Streaming
	Closing
	Closed
)

func (s State) String() string {
	switch s {
	case AwaitingRequest:
		return "awaiting-request"
	case Validating:
		return "validating"
	case Streaming:
		return "streaming"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Request is the first message a client sends after connecting. A message
// that is not valid JSON is treated as a bare path with follow disabled.
type Request struct {
	Path   string `json:"path"`
	Follow bool   `json:"follow"`
	Lines  int    `json:"lines"`
}

// ErrorMessage is the structured error sent to the client before closing.
type ErrorMessage struct {
	Error string `json:"error"`
}

// Session owns one client connection end to end. Sessions share no state
// with each other; every websocket write goes through the session's write
// lock so tail chunks and heartbeat probes never interleave mid-frame.
type Session struct {
	ID string

	conn   *websocket.Conn
	config *configuration.Configuration

	heartbeat *Heartbeat

	writeLock sync.Mutex

	// stateLock guards state and cancel; Close may run from any goroutine
	// before Run has finished wiring the session up.
	stateLock sync.RWMutex
	state     State
	cancel    context.CancelFunc

	closeOnce sync.Once
}
