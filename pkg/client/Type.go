package client

import (
	"io"

	"github.com/wstail/wstail/pkg/session"
)

type Client struct {
	URL     string
	Request *session.Request
	Output  io.Writer
}
