package store

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrNotFound    = errors.New("not found")
	ErrInternal    = errors.New("internal error")
)

const (
	msgRateLimited      = "Too many requests. Please wait a moment."
	msgInvalidProject   = "Invalid project selected"
	msgInvalidPriority  = "Priority must be one of low, medium, high"
	msgInvalidTaskID    = "Invalid task ID"
	msgInvalidProjectID = "Invalid project ID"
	msgTaskNotFound     = "Task not found"
	msgProjectNotFound  = "Project not found"
)

// Result is the outcome of a store mutation.
// ID carries the identifier of a newly created entity.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	ID      string `json:"id,omitempty"`

	cause error
}

func succeed(id string) Result {
	return Result{Success: true, ID: id}
}

func fail(cause error, msg string) Result {
	return Result{Error: msg, cause: cause}
}

func invalid(err error) Result {
	return fail(ErrValidation, err.Error())
}

// Err returns nil on success, otherwise an error matching one of the package sentinels.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	if r.cause == nil {
		return errors.New(r.Error)
	}
	return fmt.Errorf("%w: %s", r.cause, r.Error)
}
