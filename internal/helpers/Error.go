package helpers

import (
	"fmt"
	"os"

	"github.com/wstail/wstail/pkg/logger"
)

func PrintAndExit(err error, code int) {
	fmt.Println(err.Error())
	os.Exit(code)
}

func LogIfError(err error) {
	if err != nil {
		logger.Log.Error(err.Error())
	}
}
