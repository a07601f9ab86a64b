package command

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "wstail",
		Short: "Stream the tail of server-side log files over websockets",
	}
}

func (command Engine) GetName() string {
	return command.Name
}

func (command Engine) SetFlags(cmd *cobra.Command) {
	command.Flags(cmd)
}
