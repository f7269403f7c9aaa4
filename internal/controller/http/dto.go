package http

import (
	"time"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
)

// Ограничения валидатора грубые: точные проверки длины делает стор.

type createTaskRequest struct {
	Title       string     `json:"title" validate:"max=10000"`
	Description string     `json:"description" validate:"max=20000"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	ProjectID   string     `json:"project_id" validate:"max=64"`
	Tags        []string   `json:"tags" validate:"max=100,dive,max=1000"`
}

func (r createTaskRequest) toInput() entity.TaskInput {
	return entity.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    entity.Priority(r.Priority),
		DueDate:     r.DueDate,
		ProjectID:   r.ProjectID,
		Tags:        r.Tags,
	}
}

type updateTaskRequest struct {
	Title        *string    `json:"title" validate:"omitempty,max=10000"`
	Description  *string    `json:"description" validate:"omitempty,max=20000"`
	Completed    *bool      `json:"completed"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	ProjectID    *string    `json:"project_id" validate:"omitempty,max=64"`
	Tags         []string   `json:"tags" validate:"omitempty,max=100,dive,max=1000"`
}

func (r updateTaskRequest) toPatch() entity.TaskPatch {
	patch := entity.TaskPatch{
		Title:        r.Title,
		Description:  r.Description,
		Completed:    r.Completed,
		DueDate:      r.DueDate,
		ClearDueDate: r.ClearDueDate,
		ProjectID:    r.ProjectID,
	}
	if r.Priority != nil {
		p := entity.Priority(*r.Priority)
		patch.Priority = &p
	}
	// присутствующий в запросе список (в том числе пустой) заменяет теги
	if r.Tags != nil {
		patch.Tags = r.Tags
		patch.SetTags = true
	}
	return patch
}

type createProjectRequest struct {
	Name  string `json:"name" validate:"max=10000"`
	Color string `json:"color" validate:"max=256"`
	Icon  string `json:"icon" validate:"max=256"`
}

type updateProjectRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=10000"`
	Color *string `json:"color" validate:"omitempty,max=256"`
	Icon  *string `json:"icon" validate:"omitempty,max=256"`
}

type setViewRequest struct {
	View string `json:"view" validate:"required,oneof=today upcoming all completed"`
}

type selectProjectRequest struct {
	ProjectID string `json:"project_id" validate:"max=64"`
}

type setSearchRequest struct {
	Query string `json:"query" validate:"max=10000"`
}

type toggleResponse struct {
	Success   bool `json:"success"`
	Completed bool `json:"completed"`
}
