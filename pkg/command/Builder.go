package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wstail/wstail/pkg/api"
)

type Builder struct {
	parent    string
	name      string
	flags     func(cmd *cobra.Command)
	args      func(*cobra.Command, []string) error
	condition func(*api.Api) bool
	functions []func(*api.Api, []string)
	dependsOn []func(*api.Api, []string)
}

func NewBuilder() *Builder {
	return &Builder{
		args:      cobra.NoArgs,
		flags:     func(cmd *cobra.Command) {},
		condition: func(*api.Api) bool { return true },
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.name = name
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.flags = flags
	return cb
}

func (cb *Builder) Args(args func(*cobra.Command, []string) error) *Builder {
	cb.args = args
	return cb
}

func (cb *Builder) Function(fn func(*api.Api, []string)) *Builder {
	cb.functions = append(cb.functions, fn)
	return cb
}

func (cb *Builder) Condition(fn func(*api.Api) bool) *Builder {
	cb.condition = fn
	return cb
}

func (cb *Builder) DependsOn(fns ...func(*api.Api, []string)) *Builder {
	cb.dependsOn = append(cb.dependsOn, fns...)
	return cb
}

func (cb *Builder) Validate() error {
	if cb.name == "" {
		return fmt.Errorf("command name is required")
	}
	if cb.parent == "" {
		return fmt.Errorf("command parent is required")
	}
	return nil
}

func (cb *Builder) Build() Engine {
	return Engine{
		Parent:    cb.parent,
		Name:      cb.name,
		Args:      cb.args,
		Flags:     cb.flags,
		Condition: cb.condition,
		Functions: cb.functions,
		DependsOn: cb.dependsOn,
	}
}
