package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterStaticRoutes mounts:
// - /web/* -> webDir
// - /      -> redirect to /web/
func RegisterStaticRoutes(r *gin.Engine, webDir string) {
	if r == nil || webDir == "" {
		return
	}
	r.Static("/web", webDir)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/web/")
	})
}
