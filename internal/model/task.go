package model

import "time"

// Task is a tracked work item stored in Postgres.
type Task struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt *time.Time // nil until first update
}
