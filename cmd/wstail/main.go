package main

import (
	"github.com/spf13/viper"
	"github.com/wstail/wstail/pkg/api"
	"github.com/wstail/wstail/pkg/command"
	"github.com/wstail/wstail/pkg/configuration"
	"github.com/wstail/wstail/pkg/engine/commands"
	"github.com/wstail/wstail/pkg/logger"
	"github.com/wstail/wstail/pkg/startup"
	"github.com/wstail/wstail/pkg/version"
)

var VERSION = "0.1.0"

func main() {
	startup.SetFlags()
	logger.Log = logger.NewLogger(viper.GetString("log"), []string{"stdout"}, []string{"stderr"})

	a := api.NewApi(configuration.NewConfig())
	a.Version = version.New(VERSION)

	cmd := command.New()
	commands.PreloadCommands()
	commands.Run(a, cmd)
}
