package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"agentic-task-manager/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockUseCase struct {
	createOut task.CreateTaskOutput
	createErr error
	detailErr error
	stats     task.StatsOutput
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	return m.createOut, m.createErr
}
func (m *mockUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{}, nil
}
func (m *mockUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{}, m.detailErr
}
func (m *mockUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return task.UpdateTaskOutput{}, nil
}
func (m *mockUseCase) Delete(ctx context.Context, id string) error { return nil }
func (m *mockUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	return m.stats, nil
}

func newTestRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc))
	return r
}

func TestCreateHandler(t *testing.T) {
	t.Run("created returns 201", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewReader([]byte(`{"title":"Ship it"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", w.Code)
		}
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("empty title after trim returns 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{createErr: task.ErrEmptyTitle})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewReader([]byte(`{"title":"   "}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("unknown id returns 404", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{detailErr: task.ErrTaskNotFound})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestStatsRoutePrecedence(t *testing.T) {
	// /tasks/stats must hit the stats handler, not /tasks/:id.
	r := newTestRouter(&mockUseCase{
		detailErr: task.ErrTaskNotFound,
		stats:     task.StatsOutput{Total: 2, Completed: 1, Pending: 1, CompletionRate: 50},
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Data statsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Total != 2 || resp.Data.CompletionRate != 50 {
		t.Errorf("stats = %+v", resp.Data)
	}
}
