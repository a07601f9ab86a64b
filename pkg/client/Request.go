package client

import (
	"strings"

	"github.com/gorilla/websocket"
)

func Request(url string) (*websocket.Conn, error) {
	wsURL := strings.Replace(url, "http://", "ws://", 1)
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, err
	}

	return conn, nil
}
