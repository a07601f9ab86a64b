package commands

import (
	"fmt"

	"github.com/wstail/wstail/pkg/api"
	"github.com/wstail/wstail/pkg/command"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().Parent("wstail").Name("version").Function(cmdVersion).Build(),
	)
}

func cmdVersion(a *api.Api, args []string) {
	fmt.Println(a.Version.Node)
}
