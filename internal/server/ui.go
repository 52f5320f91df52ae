package server

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var webFS embed.FS

func (s *Server) registerUIRoutes() {
	s.engine.GET("/", serveIndex)
}

func serveIndex(c *gin.Context) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
