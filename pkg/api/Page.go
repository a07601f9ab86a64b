package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed assets/index.html
var indexPage []byte

// Page serves the bundled browser viewer. The page opens the websocket,
// sends the request message and appends incoming chunks.
func (a *Api) Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}
