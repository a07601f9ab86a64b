package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrHeartbeatTimeout is terminal for the session. It is never surfaced to
// the client, there is nobody left to read the message.
var ErrHeartbeatTimeout = errors.New("heartbeat timed out")

// Heartbeat probes the client on a fixed interval and expects a timely
// reply. At most one probe is outstanding at any time, a quiet log file must
// not look like a dead connection and a dead client must be noticed even
// while data is flowing.
type Heartbeat struct {
	interval time.Duration
	timeout  time.Duration
	probe    func() error

	pongs chan struct{}

	lock     sync.RWMutex
	lastPong time.Time
}

func NewHeartbeat(interval time.Duration, timeout time.Duration, probe func() error) *Heartbeat {
	return &Heartbeat{
		interval: interval,
		timeout:  timeout,
		probe:    probe,
		pongs:    make(chan struct{}, 1),
	}
}

// Pong is called by the session's read pump when the client answers. It
// never blocks, a stray duplicate reply is dropped.
func (h *Heartbeat) Pong() {
	select {
	case h.pongs <- struct{}{}:
	default:
	}
}

func (h *Heartbeat) LastPong() time.Time {
	h.lock.RLock()
	defer h.lock.RUnlock()

	return h.lastPong
}

// Run probes until the context is cancelled and returns ErrHeartbeatTimeout
// when a reply misses its deadline.
func (h *Heartbeat) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.pongs:
			// Unsolicited reply, nothing outstanding.
			h.record()
		case <-ticker.C:
			if err := h.probe(); err != nil {
				return err
			}

			deadline := time.NewTimer(h.timeout)

			select {
			case <-ctx.Done():
				deadline.Stop()
				return ctx.Err()
			case <-h.pongs:
				deadline.Stop()
				h.record()
			case <-deadline.C:
				return ErrHeartbeatTimeout
			}
		}
	}
}

func (h *Heartbeat) record() {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.lastPong = time.Now()
}
