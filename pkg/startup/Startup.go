package startup

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wstail/wstail/pkg/configuration"
	"github.com/wstail/wstail/pkg/static"
	"gopkg.in/yaml.v3"
)

// Load reads an optional YAML configuration and merges it with whatever the
// flags already bound into viper. Flags that were set explicitly win over
// the file; file values win over flag defaults.
func Load(reader io.Reader) (*configuration.Configuration, error) {
	if reader != nil {
		viper.SetConfigType("yaml")

		if err := viper.ReadConfig(reader); err != nil {
			return nil, errors.Wrap(err, "failed to read configuration")
		}
	}

	return Build()
}

// Build assembles the immutable process configuration from viper.
func Build() (*configuration.Configuration, error) {
	conf := configuration.NewConfig()

	if listen := viper.GetString("listen"); listen != "" {
		hostPort, err := configuration.NewHostPort(listen)

		if err != nil {
			return nil, err
		}

		conf.HostPort = hostPort
	}

	conf.Root = viper.GetString("root")

	if conf.Root == "" {
		return nil, errors.New("root directory is required")
	}

	if interval := viper.GetDuration("poll-interval"); interval > 0 {
		conf.PollInterval = interval
	}

	if interval := viper.GetDuration("heartbeat-interval"); interval > 0 {
		conf.HeartbeatInterval = interval
	}

	if timeout := viper.GetDuration("heartbeat-timeout"); timeout > 0 {
		conf.HeartbeatTimeout = timeout
	}

	return conf, nil
}

// Save writes the configuration with the same keys Load reads, so a saved
// file round-trips.
func Save(conf *configuration.Configuration, path string) error {
	yamlObj, err := yaml.Marshal(map[string]interface{}{
		"listen":             conf.HostPort.ToString(),
		"root":               conf.Root,
		"poll-interval":      conf.PollInterval.String(),
		"heartbeat-interval": conf.HeartbeatInterval.String(),
		"heartbeat-timeout":  conf.HeartbeatTimeout.String(),
	})

	if err != nil {
		return err
	}

	return os.WriteFile(path, yamlObj, 0644)
}

func SetFlags() {
	flag.String("listen", static.DEFAULT_LISTEN, "Interface and port the server binds")
	flag.String("root", "", "Directory outside of which requested paths must not resolve")
	flag.Duration("poll-interval", static.DEFAULT_POLL_INTERVAL, "How often a followed file is checked for growth")
	flag.Duration("heartbeat-interval", static.DEFAULT_HEARTBEAT_INTERVAL, "Interval between liveness probes")
	flag.Duration("heartbeat-timeout", static.DEFAULT_HEARTBEAT_TIMEOUT, "Window to receive a pong before the session is closed")
	flag.String("config", "", "Optional YAML configuration file")
	flag.String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error, dpanic, panic, fatal")

	/* Client cli options */
	flag.String("url", static.DEFAULT_URL, "Server websocket URL for the follow client")
	flag.Int("lines", 0, "Cap the initial snapshot to the last N lines (0 = whole file)")
	flag.Bool("no-follow", false, "Read the file once instead of tailing it")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)
}
