package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/internal/security"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

// Rate limiter keys, one per mutation kind.
const (
	actionAddTask       = "addTask"
	actionUpdateTask    = "updateTask"
	actionDeleteTask    = "deleteTask"
	actionAddProject    = "addProject"
	actionUpdateProject = "updateProject"
	actionDeleteProject = "deleteProject"
)

// Store owns the tasks, the projects and the current navigation state.
// Every operation runs under a single lock and either applies fully or not at all.
type Store struct {
	mu sync.RWMutex

	tasks           []entity.Task
	projects        []entity.Project
	currentView     entity.ViewMode
	selectedProject string
	searchQuery     string

	limiter *security.RateLimiter
	now     func() time.Time
	newID   func() string
	validID func(string) bool
	log     *logrus.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithIDValidator replaces the UUID shape check applied to ids passed into
// update, delete, toggle and selection operations.
func WithIDValidator(valid func(string) bool) Option {
	return func(s *Store) { s.validID = valid }
}

func WithRateLimiter(l *security.RateLimiter) Option {
	return func(s *Store) { s.limiter = l }
}

func WithProjects(projects ...entity.Project) Option {
	return func(s *Store) { s.projects = append([]entity.Project{}, projects...) }
}

func WithLogger(l *logrus.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(opts ...Option) *Store {
	s := &Store{
		tasks:       []entity.Task{},
		projects:    []entity.Project{},
		currentView: entity.ViewToday,
		now:         time.Now,
		newID:       security.NewID,
		validID:     security.IsValidUUID,
		log:         logger.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.limiter == nil {
		s.limiter = security.NewRateLimiter(security.DefaultRateLimitMax, security.DefaultRateLimitWindow)
	}
	return s
}

// DefaultProjects is the project set a brand new board starts with.
func DefaultProjects(newID func() string) []entity.Project {
	return []entity.Project{
		{ID: newID(), Name: "Inbox", Color: "#38bdf8", Icon: "Inbox"},
		{ID: newID(), Name: "Work", Color: "#9E7FFF", Icon: "Briefcase"},
		{ID: newID(), Name: "Personal", Color: "#f472b6", Icon: "User"},
	}
}

// recoverTo turns a panic inside a mutation into a generic failure result.
// Mutations only commit after all fallible work is done, so state is untouched.
func (s *Store) recoverTo(op string, res *Result) {
	if r := recover(); r != nil {
		s.log.WithFields(logrus.Fields{
			"op":    op,
			"panic": r,
		}).Error("Store operation panicked")
		*res = fail(ErrInternal, "Failed to "+op)
	}
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) projectIndex(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Tasks() []entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

func (s *Store) Projects() []entity.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Project{}, s.projects...)
}

func (s *Store) Task(id string) (entity.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.taskIndex(id)
	if i < 0 {
		return entity.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

func (s *Store) Project(id string) (entity.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.projectIndex(id)
	if i < 0 {
		return entity.Project{}, false
	}
	return s.projects[i], true
}

func (s *Store) CurrentView() entity.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentView
}

func (s *Store) SelectedProject() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedProject
}

func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SetCurrentView switches the view and drops any project selection.
// Unknown views are ignored.
func (s *Store) SetCurrentView(view entity.ViewMode) {
	if !view.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentView = view
	s.selectedProject = ""
}

// SetSelectedProject narrows the list to one project and resets the view to all.
// An empty id clears the selection; a malformed id is ignored.
func (s *Store) SetSelectedProject(id string) {
	if id != "" && !s.validID(id) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProject = id
	s.currentView = entity.ViewAll
}

func (s *Store) SetSearchQuery(query string) {
	clean := security.SanitizeText(query, security.SearchQueryMaxLength)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = clean
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.Snapshot{
		Tasks:           cloneTasks(s.tasks),
		Projects:        append([]entity.Project{}, s.projects...),
		CurrentView:     s.currentView,
		SelectedProject: s.selectedProject,
		SearchQuery:     s.searchQuery,
	}
}

// Replace swaps the whole state for snap. Counts are taken as given;
// call RecountTasks when the snapshot comes from an untrusted source.
func (s *Store) Replace(snap entity.Snapshot) {
	c := snap.Clone()
	if !c.CurrentView.Valid() {
		c.CurrentView = entity.ViewToday
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = c.Tasks
	s.projects = c.Projects
	s.currentView = c.CurrentView
	s.selectedProject = c.SelectedProject
	s.searchQuery = c.SearchQuery
}

// RecountTasks rebuilds every project's taskCount from the task list.
func (s *Store) RecountTasks() {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int, len(s.projects))
	for _, t := range s.tasks {
		counts[t.ProjectID]++
	}
	for i := range s.projects {
		s.projects[i].TaskCount = counts[s.projects[i].ID]
	}
}

func cloneTasks(tasks []entity.Task) []entity.Task {
	out := make([]entity.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
