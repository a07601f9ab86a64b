package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *Api) DisplayVersion(c *gin.Context) {
	c.JSON(http.StatusOK, a.Version)
}
