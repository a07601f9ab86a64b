package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wstail/wstail/pkg/contracts/iresponse"
)

func (a *Api) Health(c *gin.Context) {
	c.JSON(http.StatusOK, &iresponse.Response{
		HttpStatus:  http.StatusOK,
		Explanation: "server is healthy",
		Error:       false,
		Success:     true,
		Data:        nil,
	})
}
