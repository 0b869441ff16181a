package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	notificationHTTP "agentic-task-manager/internal/notification/delivery/http"
)

// setupNotificationDomain registers the notification management routes. The
// handler itself is built in main alongside the pipeline use case, because the
// queue worker's lifecycle belongs to the process, not the HTTP server.
func (srv HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup) {
	notificationHTTP.RegisterRoutes(api.Group("/notifications"), srv.notificationHandler)
	srv.l.Infof(ctx, "Notification domain registered")
}
