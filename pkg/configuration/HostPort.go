package configuration

import (
	"net"

	"github.com/pkg/errors"
)

func NewHostPort(listen string) (HostPort, error) {
	host, port, err := net.SplitHostPort(listen)

	if err != nil {
		return HostPort{}, errors.Wrapf(err, "invalid listen address %q", listen)
	}

	return HostPort{Host: host, Port: port}, nil
}

func (hp HostPort) ToString() string {
	return net.JoinHostPort(hp.Host, hp.Port)
}
