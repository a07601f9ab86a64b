package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/wstail/wstail/pkg/logger"
	"github.com/wstail/wstail/pkg/metrics"
	"github.com/wstail/wstail/pkg/session"
	"go.uber.org/zap"
)

var wssUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Stream upgrades the request to a websocket and hands the connection to a
// session. Every session failure stays local, the server keeps accepting.
func (a *Api) Stream(c *gin.Context) {
	conn, err := wssUpgrader.Upgrade(c.Writer, c.Request, nil)

	if err != nil {
		logger.Log.Error("failed to upgrade websocket connection", zap.Error(err))
		return
	}

	sess := session.New(conn, a.Config)

	metrics.SessionsTotal.Increment()
	metrics.SessionsActive.Increase()
	defer metrics.SessionsActive.Decrease()

	logger.Log.Info("client connected",
		zap.String("session", sess.ID),
		zap.String("remote", conn.RemoteAddr().String()))

	err = sess.Run(c.Request.Context())

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Info("client disconnected",
			zap.String("session", sess.ID),
			zap.Error(err))

		return
	}

	logger.Log.Info("client disconnected", zap.String("session", sess.ID))
}
