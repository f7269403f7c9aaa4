package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

const queryTimeout = 5 * time.Second

// SnapshotRepository stores the board in projects, tasks and board_state.
// Save rewrites all three tables in one transaction.
type SnapshotRepository struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
}

func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{
		db:     db,
		logger: logger.Log,
	}
}

func (r *SnapshotRepository) Load(ctx context.Context) (entity.Snapshot, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var snap entity.Snapshot
	var view string
	err := r.db.QueryRow(ctx, `
		SELECT current_view, selected_project, search_query
		FROM board_state WHERE id = 1`,
	).Scan(&view, &snap.SelectedProject, &snap.SearchQuery)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Snapshot{}, false, nil
		}
		r.logger.WithFields(logrus.Fields{
			"method": "Load",
		}).WithError(err).Error("Failed to read board state")
		return entity.Snapshot{}, false, fmt.Errorf("failed to read board state: %w", err)
	}
	snap.CurrentView = entity.ViewMode(view)

	if snap.Projects, err = r.loadProjects(ctx); err != nil {
		return entity.Snapshot{}, false, err
	}
	if snap.Tasks, err = r.loadTasks(ctx); err != nil {
		return entity.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (r *SnapshotRepository) loadProjects(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, color, icon, task_count
		FROM projects ORDER BY position`)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"method": "Load",
		}).WithError(err).Error("Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []entity.Project{}
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.Icon, &p.TaskCount); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after scanning project rows: %w", err)
	}
	return projects, nil
}

func (r *SnapshotRepository) loadTasks(ctx context.Context) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, completed, priority, due_date, project_id, created_at, tags
		FROM tasks ORDER BY position`)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"method": "Load",
		}).WithError(err).Error("Failed to list tasks")
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []entity.Task{}
	for rows.Next() {
		var t entity.Task
		var priority string
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Completed,
			&priority,
			&t.DueDate,
			&t.ProjectID,
			&t.CreatedAt,
			&t.Tags,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		t.Priority = entity.Priority(priority)
		if t.Tags == nil {
			t.Tags = []string{}
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after scanning task rows: %w", err)
	}
	return tasks, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snap entity.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM tasks`); err != nil {
			return fmt.Errorf("failed to clear tasks: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM projects`); err != nil {
			return fmt.Errorf("failed to clear projects: %w", err)
		}

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"projects"},
			[]string{"id", "name", "color", "icon", "task_count", "position"},
			pgx.CopyFromSlice(len(snap.Projects), func(i int) ([]any, error) {
				p := snap.Projects[i]
				return []any{p.ID, p.Name, p.Color, p.Icon, p.TaskCount, i}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to copy projects: %w", err)
		}

		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"tasks"},
			[]string{"id", "title", "description", "completed", "priority", "due_date", "project_id", "created_at", "tags", "position"},
			pgx.CopyFromSlice(len(snap.Tasks), func(i int) ([]any, error) {
				t := snap.Tasks[i]
				tags := t.Tags
				if tags == nil {
					tags = []string{}
				}
				return []any{t.ID, t.Title, t.Description, t.Completed, string(t.Priority), t.DueDate, t.ProjectID, t.CreatedAt, tags, i}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to copy tasks: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO board_state (id, current_view, selected_project, search_query, updated_at)
			VALUES (1, $1, $2, $3, now())
			ON CONFLICT (id) DO UPDATE
			SET current_view = EXCLUDED.current_view,
			    selected_project = EXCLUDED.selected_project,
			    search_query = EXCLUDED.search_query,
			    updated_at = EXCLUDED.updated_at`,
			string(snap.CurrentView), snap.SelectedProject, snap.SearchQuery,
		)
		if err != nil {
			return fmt.Errorf("failed to save board state: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"method":   "Save",
			"tasks":    len(snap.Tasks),
			"projects": len(snap.Projects),
		}).WithError(err).Error("Failed to save snapshot")
		return err
	}
	return nil
}

func (r *SnapshotRepository) Close() error {
	r.db.Close()
	return nil
}
