package client

import (
	"context"
	"encoding/json"
	"io"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/wstail/wstail/pkg/session"
	"github.com/wstail/wstail/pkg/static"
)

func New(url string, request *session.Request, output io.Writer) *Client {
	return &Client{
		URL:     url,
		Request: request,
		Output:  output,
	}
}

// Follow streams the requested file to Output, reconnecting with exponential
// backoff on transport failures. Errors the server reports are permanent, a
// forbidden path does not get better by retrying.
func (c *Client) Follow(ctx context.Context) error {
	policy := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	return backoff.Retry(func() error {
		return c.stream(ctx)
	}, policy)
}

func (c *Client) stream(ctx context.Context) error {
	conn, err := Request(c.URL)

	if err != nil {
		return err
	}

	defer conn.Close()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	payload, err := json.Marshal(c.Request)

	if err != nil {
		return backoff.Permanent(err)
	}

	if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return err
	}

	for {
		_, message, err := conn.ReadMessage()

		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return err
		}

		if string(message) == static.PING_MESSAGE {
			if err = conn.WriteMessage(websocket.TextMessage, []byte(static.PONG_MESSAGE)); err != nil {
				return err
			}

			continue
		}

		errorMessage := &session.ErrorMessage{}

		if json.Unmarshal(message, errorMessage) == nil && errorMessage.Error != "" {
			return backoff.Permanent(errors.New(errorMessage.Error))
		}

		if _, err = c.Output.Write(message); err != nil {
			return backoff.Permanent(err)
		}
	}
}
