package httpserver

import (
	"github.com/gin-gonic/gin"

	"agentic-task-manager/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "agentic-task-manager"
)

// healthCheck handles health check requests. Database connectivity is
// reported but does not fail the check; the notification pipeline works
// without Postgres.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	database := "not_configured"
	if srv.postgresDB != nil {
		database = "connected"
		if err := srv.postgresDB.PingContext(c.Request.Context()); err != nil {
			database = "unreachable"
		}
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": database,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
