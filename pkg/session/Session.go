package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wstail/wstail/internal/helpers"
	"github.com/wstail/wstail/pkg/configuration"
	"github.com/wstail/wstail/pkg/logger"
	"github.com/wstail/wstail/pkg/metrics"
	"github.com/wstail/wstail/pkg/resolver"
	"github.com/wstail/wstail/pkg/static"
	"github.com/wstail/wstail/pkg/tail"
	"go.uber.org/zap"
)

var ErrNoPath = errors.New("request carries no path")

func New(conn *websocket.Conn, config *configuration.Configuration) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		conn:   conn,
		config: config,
		state:  AwaitingRequest,
	}

	s.heartbeat = NewHeartbeat(config.HeartbeatInterval, config.HeartbeatTimeout, func() error {
		return s.write(websocket.TextMessage, []byte(static.PING_MESSAGE))
	})

	return s
}

// Run drives the session until the client disconnects, the file fails, the
// heartbeat times out or the context is cancelled. The connection is closed
// on every exit path.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	s.stateLock.Lock()
	s.cancel = cancel
	s.stateLock.Unlock()

	defer s.Close()

	request, err := s.awaitRequest()

	if err != nil {
		return err
	}

	s.setState(Validating)

	resolved, err := resolver.Resolve(s.config.Root, request.Path)

	if err != nil {
		metrics.PathsRejected.Increment(reason(err))
		s.fail(err)
		return err
	}

	logger.Log.Info("path resolved",
		zap.String("session", s.ID),
		zap.String("requested", request.Path),
		zap.String("resolved", resolved),
		zap.Bool("follow", request.Follow))

	s.setState(Streaming)

	reader := tail.NewReader(resolved, s.config.PollInterval)

	content, err := reader.Snapshot()

	if err != nil {
		s.fail(err)
		return err
	}

	snapshot := tail.LastLines(content, request.Lines)

	if err = s.write(websocket.TextMessage, snapshot); err != nil {
		return err
	}

	metrics.BytesStreamed.Add(float64(len(snapshot)))

	if !request.Follow {
		return nil
	}

	return s.stream(ctx, reader)
}

// awaitRequest blocks on the first inbound message and parses it.
func (s *Session) awaitRequest() (*Request, error) {
	_, message, err := s.conn.ReadMessage()

	if err != nil {
		return nil, err
	}

	request := &Request{}

	if err = json.Unmarshal(message, request); err != nil {
		request = &Request{Path: string(message)}
	}

	if request.Path == "" {
		s.fail(ErrNoPath)
		return nil, ErrNoPath
	}

	return request, nil
}

// stream runs the tail loop, the heartbeat monitor and the inbound read pump
// concurrently and multiplexes their output onto the connection. First error
// wins; everything else is torn down through the shared context.
func (s *Session) stream(ctx context.Context, reader *tail.Reader) error {
	chunks := make(chan []byte, 16)
	tailErr := make(chan error, 1)
	heartbeatErr := make(chan error, 1)
	readErr := make(chan error, 1)

	go func() {
		tailErr <- reader.Follow(ctx, chunks)
	}()

	go func() {
		heartbeatErr <- s.heartbeat.Run(ctx)
	}()

	go func() {
		readErr <- s.inbound(ctx)
	}()

	for {
		select {
		case chunk := <-chunks:
			if err := s.write(websocket.TextMessage, chunk); err != nil {
				return err
			}

			metrics.BytesStreamed.Add(float64(len(chunk)))
		case err := <-tailErr:
			if err != nil && !errors.Is(err, context.Canceled) {
				s.fail(err)
			}

			return err
		case err := <-heartbeatErr:
			if errors.Is(err, ErrHeartbeatTimeout) {
				// The client is presumed gone, close silently.
				metrics.HeartbeatTimeouts.Increment()
				logger.Log.Info("heartbeat timed out", zap.String("session", s.ID))
			}

			return err
		case err := <-readErr:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// inbound routes heartbeat replies to the monitor and turns a client close
// into session teardown.
func (s *Session) inbound(ctx context.Context) error {
	for {
		messageType, message, err := s.conn.ReadMessage()

		if err != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return err
		}

		if messageType != websocket.TextMessage {
			continue
		}

		if string(message) == static.PONG_MESSAGE {
			s.heartbeat.Pong()
		}
	}
}

// fail surfaces a terminal error to the client. Transport errors while
// failing are logged and otherwise ignored, the connection is going away.
func (s *Session) fail(err error) {
	s.setState(Closing)

	payload, marshalErr := json.Marshal(&ErrorMessage{Error: reason(err)})

	if marshalErr == nil {
		helpers.LogIfError(s.write(websocket.TextMessage, payload))
	}

	helpers.LogIfError(s.write(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason(err))))
}

// Close cancels the tail loop and the heartbeat monitor, sends a close frame
// and releases the connection. Closing twice is a no-op.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.setState(Closing)

		s.stateLock.RLock()
		cancel := s.cancel
		s.stateLock.RUnlock()

		if cancel != nil {
			cancel()
		}

		s.writeLock.Lock()
		_ = s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.writeLock.Unlock()

		_ = s.conn.Close()

		s.setState(Closed)
	})
}

func (s *Session) State() State {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	return s.state
}

func (s *Session) setState(next State) {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	if s.state == Closed {
		return
	}

	s.state = next
}

func (s *Session) write(messageType int, payload []byte) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	return s.conn.WriteMessage(messageType, payload)
}

// reason maps internal errors to the human-readable text sent to clients,
// keeping wrapped OS detail out of the wire.
func reason(err error) string {
	switch {
	case errors.Is(err, resolver.ErrInvalidPath):
		return resolver.ErrInvalidPath.Error()
	case errors.Is(err, resolver.ErrNotFound):
		return resolver.ErrNotFound.Error()
	case errors.Is(err, resolver.ErrNotReadable):
		return resolver.ErrNotReadable.Error()
	case errors.Is(err, tail.ErrReadFailure):
		return tail.ErrReadFailure.Error()
	case errors.Is(err, ErrNoPath):
		return ErrNoPath.Error()
	default:
		return "internal error"
	}
}
