package api

import (
	"github.com/wstail/wstail/pkg/configuration"
)

func NewApi(config *configuration.Configuration) *Api {
	return &Api{
		Config: config,
	}
}
