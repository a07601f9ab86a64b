package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wstail/wstail/internal/helpers"
	"github.com/wstail/wstail/pkg/api"
	"github.com/wstail/wstail/pkg/command"
)

func Demo() {
	Commands = append(Commands,
		command.NewBuilder().Parent("wstail").Name("demo").Args(cobra.ExactArgs(1)).Function(cmdDemo).Build(),
	)
}

// cmdDemo appends a timestamp line every second, a stand-in for a real log
// producer when trying the server out.
func cmdDemo(a *api.Api, args []string) {
	file, err := os.OpenFile(args[0], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	defer file.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-ticker.C:
			if _, err = fmt.Fprintf(file, "%s\n", tick.Format(time.RFC3339)); err != nil {
				helpers.PrintAndExit(err, 1)
			}
		}
	}
}
