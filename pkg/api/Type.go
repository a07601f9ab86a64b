package api

import (
	"github.com/wstail/wstail/pkg/configuration"
	"github.com/wstail/wstail/pkg/version"
)

type Api struct {
	Config  *configuration.Configuration
	Version *version.Version
}
