package configuration

import (
	"github.com/wstail/wstail/pkg/static"
)

func NewConfig() *Configuration {
	hostPort, err := NewHostPort(static.DEFAULT_LISTEN)

	if err != nil {
		panic(err)
	}

	return &Configuration{
		HostPort:          hostPort,
		PollInterval:      static.DEFAULT_POLL_INTERVAL,
		HeartbeatInterval: static.DEFAULT_HEARTBEAT_INTERVAL,
		HeartbeatTimeout:  static.DEFAULT_HEARTBEAT_TIMEOUT,
	}
}
