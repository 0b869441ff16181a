package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The manual trigger is unauthenticated by design: it lives behind the same
// trust boundary as the task API, not the public webhook.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/pr", h.SendPRNotification)
	rg.POST("/test", h.TestService)
	rg.GET("/status", h.Status)
}
