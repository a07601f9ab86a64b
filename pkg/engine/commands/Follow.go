package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wstail/wstail/internal/helpers"
	"github.com/wstail/wstail/pkg/api"
	"github.com/wstail/wstail/pkg/client"
	"github.com/wstail/wstail/pkg/command"
	"github.com/wstail/wstail/pkg/session"
)

func Follow() {
	Commands = append(Commands,
		command.NewBuilder().Parent("wstail").Name("follow").Args(cobra.ExactArgs(1)).Function(cmdFollow).Build(),
	)
}

func cmdFollow(a *api.Api, args []string) {
	request := &session.Request{
		Path:   args[0],
		Follow: !viper.GetBool("no-follow"),
		Lines:  viper.GetInt("lines"),
	}

	cli := client.New(viper.GetString("url"), request, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Follow(ctx); err != nil && !errors.Is(err, context.Canceled) {
		helpers.PrintAndExit(err, 1)
	}
}
