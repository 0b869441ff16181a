package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title must not be empty")
	ErrTitleTooLong = errors.New("task title must be at most 500 characters")
)
