package configuration

import "time"

// Configuration is immutable for the process lifetime. It is built once at
// startup and handed to every session; sessions never mutate it.
type Configuration struct {
	HostPort          HostPort      `json:"hostPort" yaml:"hostPort"`
	Root              string        `json:"root" yaml:"root"`
	PollInterval      time.Duration `json:"pollInterval" yaml:"pollInterval"`
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
	HeartbeatTimeout  time.Duration `json:"heartbeatTimeout" yaml:"heartbeatTimeout"`
}

type HostPort struct {
	Host string `json:"host" yaml:"host"`
	Port string `json:"port" yaml:"port"`
}
