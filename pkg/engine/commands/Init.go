package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wstail/wstail/internal/helpers"
	"github.com/wstail/wstail/pkg/api"
	"github.com/wstail/wstail/pkg/command"
	"github.com/wstail/wstail/pkg/startup"
)

func Init() {
	Commands = append(Commands,
		command.NewBuilder().Parent("wstail").Name("init").Args(cobra.ExactArgs(1)).Function(cmdInit).Build(),
	)
}

// cmdInit writes the effective configuration to a YAML file that can be fed
// back through --config.
func cmdInit(a *api.Api, args []string) {
	conf, err := startup.Build()

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	if err = startup.Save(conf, args[0]); err != nil {
		helpers.PrintAndExit(err, 1)
	}

	fmt.Printf("configuration written to %s\n", args[0])
}
