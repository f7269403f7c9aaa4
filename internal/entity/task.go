package entity

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   string     `json:"project_id"`
	CreatedAt   time.Time  `json:"created_at"`
	Tags        []string   `json:"tags"`
}

// Clone returns a copy that shares no slices or pointers with t.
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	c.Tags = append([]string{}, t.Tags...)
	return c
}

// TaskInput is everything a caller supplies when creating a task.
type TaskInput struct {
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	ProjectID   string
	Tags        []string
}

// TaskPatch holds the fields to change; nil means unchanged.
type TaskPatch struct {
	Title        *string
	Description  *string
	Completed    *bool
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
	ProjectID    *string
	Tags         []string
	SetTags      bool
}
