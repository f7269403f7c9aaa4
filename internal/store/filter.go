package store

import (
	"strings"
	"time"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
)

// FilteredTasks derives the visible task list from the current state.
// Search narrows first, then either the selected project or the view applies.
// Nothing is cached; every call recomputes.
func (s *Store) FilteredTasks() []entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return FilterTasks(s.tasks, Filter{
		View:      s.currentView,
		ProjectID: s.selectedProject,
		Query:     s.searchQuery,
	}, s.now())
}

// Filter describes one task list query. Zero fields do not filter,
// except View, whose zero value filters nothing out at all.
type Filter struct {
	View      entity.ViewMode
	ProjectID string
	Query     string
}

// FilterTasks applies f to tasks as of now and returns copies of the matches in order.
func FilterTasks(tasks []entity.Task, f Filter, now time.Time) []entity.Task {
	query := strings.ToLower(f.Query)
	out := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		if f.ProjectID != "" {
			if t.ProjectID != f.ProjectID {
				continue
			}
		} else if !inView(t, f.View, now) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

func matchesQuery(t entity.Task, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(t.Title), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), lowerQuery) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

// inView reports whether t belongs to view. The all view only holds open tasks.
func inView(t entity.Task, view entity.ViewMode, now time.Time) bool {
	switch view {
	case entity.ViewToday:
		return !t.Completed && t.DueDate != nil && sameDay(*t.DueDate, now)
	case entity.ViewUpcoming:
		return !t.Completed && t.DueDate != nil && t.DueDate.After(now)
	case entity.ViewCompleted:
		return t.Completed
	case entity.ViewAll:
		return !t.Completed
	}
	return true
}

func sameDay(a, now time.Time) bool {
	a = a.In(now.Location())
	y1, m1, d1 := a.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
