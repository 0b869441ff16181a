package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "agentic-task-manager/internal/task/delivery/http"
	taskRepo "agentic-task-manager/internal/task/repository/postgre"
	taskUC "agentic-task-manager/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	uc := taskUC.New(repo, srv.l)
	h := taskHTTP.New(srv.l, uc)

	// Registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
}
