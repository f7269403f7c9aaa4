package sqlite

import (
	"time"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
)

type projectRecord struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Color     string
	Icon      string
	TaskCount int
	Position  int `gorm:"index"`
}

func (projectRecord) TableName() string { return "projects" }

type taskRecord struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Completed   bool
	Priority    string
	DueDate     *time.Time
	ProjectID   string    `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	Tags        []string  `gorm:"serializer:json"`
	Position    int       `gorm:"index"`
}

func (taskRecord) TableName() string { return "tasks" }

type boardStateRecord struct {
	ID              uint `gorm:"primaryKey"`
	CurrentView     string
	SelectedProject string
	SearchQuery     string
	UpdatedAt       time.Time
}

func (boardStateRecord) TableName() string { return "board_state" }

const boardStateID = 1

func toProjectRecord(p entity.Project, position int) projectRecord {
	return projectRecord{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		Icon:      p.Icon,
		TaskCount: p.TaskCount,
		Position:  position,
	}
}

func (r projectRecord) toEntity() entity.Project {
	return entity.Project{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		Icon:      r.Icon,
		TaskCount: r.TaskCount,
	}
}

func toTaskRecord(t entity.Task, position int) taskRecord {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
		Tags:        tags,
		Position:    position,
	}
}

func (r taskRecord) toEntity() entity.Task {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return entity.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    entity.Priority(r.Priority),
		DueDate:     r.DueDate,
		ProjectID:   r.ProjectID,
		CreatedAt:   r.CreatedAt,
		Tags:        tags,
	}
}
