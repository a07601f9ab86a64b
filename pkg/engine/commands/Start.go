package commands

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/wstail/wstail/internal/helpers"
	"github.com/wstail/wstail/pkg/api"
	"github.com/wstail/wstail/pkg/api/middlewares"
	"github.com/wstail/wstail/pkg/command"
	"github.com/wstail/wstail/pkg/configuration"
	"github.com/wstail/wstail/pkg/logger"
	"github.com/wstail/wstail/pkg/metrics"
	"github.com/wstail/wstail/pkg/startup"
	"go.uber.org/zap"
)

func Start() {
	Commands = append(Commands,
		command.NewBuilder().Parent("wstail").Name("start").Function(cmdStart).Build(),
	)
}

func cmdStart(a *api.Api, args []string) {
	var conf *configuration.Configuration
	var err error

	if path := viper.GetString("config"); path != "" {
		file, openErr := os.Open(path)

		if openErr != nil {
			helpers.PrintAndExit(openErr, 1)
		}

		conf, err = startup.Load(file)
		file.Close()
	} else {
		conf, err = startup.Build()
	}

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	a.Config = conf

	metrics.ServerVersion.Increment(a.Version.Node)

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(middlewares.CORS())

	router.GET("/", a.Page)
	router.GET("/ws", a.Stream)
	router.GET("/healthz", a.Health)
	router.GET("/version", a.DisplayVersion)
	router.GET("/metrics", a.MetricsHandle())

	server := http.Server{
		Addr:              conf.HostPort.ToString(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Log.Info("server listening",
		zap.String("address", server.Addr),
		zap.String("root", conf.Root))

	err = server.ListenAndServe()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		helpers.PrintAndExit(err, 1)
	}
}
