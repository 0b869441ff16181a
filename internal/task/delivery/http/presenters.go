package http

import (
	"time"

	"agentic-task-manager/internal/model"
	"agentic-task-manager/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title string `json:"title" binding:"required"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{Title: r.Title}
}

// ---

type listReq struct {
	Completed *bool `form:"completed"`
	Limit     int   `form:"limit"`
	Offset    int   `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListTasksInput{
		Completed: r.Completed,
		Limit:     limit,
		Offset:    offset,
	}
}

// ---

// updateReq is a partial update; absent fields are left unchanged.
type updateReq struct {
	ID        string  `json:"-"` // populated from URI param
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:        r.ID,
		Title:     r.Title,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type statsResp struct {
	Total          int     `json:"total_tasks"`
	Completed      int     `json:"completed_tasks"`
	Pending        int     `json:"pending_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Total:          out.Total,
		Completed:      out.Completed,
		Pending:        out.Pending,
		CompletionRate: out.CompletionRate,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
