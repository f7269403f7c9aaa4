package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/internal/security"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *Store
	work  string
	home  string
	now   time.Time
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		work: security.NewID(),
		home: security.NewID(),
		now:  testNow,
	}
	base := []Option{
		WithClock(func() time.Time { return f.now }),
		WithRateLimiter(security.NewRateLimiter(1000, time.Minute)),
		WithProjects(
			entity.Project{ID: f.work, Name: "Work", Color: "#9E7FFF", Icon: "Briefcase"},
			entity.Project{ID: f.home, Name: "Home", Color: "#f472b6", Icon: "User"},
		),
	}
	f.store = New(append(base, opts...)...)
	return f
}

func (f *fixture) addTask(t *testing.T, in entity.TaskInput) string {
	t.Helper()
	if in.ProjectID == "" {
		in.ProjectID = f.work
	}
	res := f.store.AddTask(in)
	require.True(t, res.Success, res.Error)
	require.NotEmpty(t, res.ID)
	return res.ID
}

func (f *fixture) count(t *testing.T, projectID string) int {
	t.Helper()
	p, ok := f.store.Project(projectID)
	require.True(t, ok)
	return p.TaskCount
}

func ptr[T any](v T) *T { return &v }

func TestNew(t *testing.T) {
	s := New()

	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.Projects())
	assert.Equal(t, entity.ViewToday, s.CurrentView())
	assert.Empty(t, s.SelectedProject())
	assert.Empty(t, s.SearchQuery())
}

func TestDefaultProjects(t *testing.T) {
	projects := DefaultProjects(security.NewID)

	require.Len(t, projects, 3)
	assert.Equal(t, "Inbox", projects[0].Name)
	assert.Equal(t, "Work", projects[1].Name)
	assert.Equal(t, "Personal", projects[2].Name)
	for _, p := range projects {
		assert.True(t, security.IsValidUUID(p.ID))
		assert.Zero(t, p.TaskCount)
	}
}

func TestAddTask(t *testing.T) {
	tests := []struct {
		name  string
		input func(f *fixture) entity.TaskInput
		want  struct {
			success bool
			err     error
			message string
		}
	}{
		{
			name: "valid task",
			input: func(f *fixture) entity.TaskInput {
				return entity.TaskInput{Title: "Buy milk", ProjectID: f.work, Priority: entity.PriorityLow}
			},
			want: struct {
				success bool
				err     error
				message string
			}{success: true},
		},
		{
			name: "empty title",
			input: func(f *fixture) entity.TaskInput {
				return entity.TaskInput{Title: "   ", ProjectID: f.work}
			},
			want: struct {
				success bool
				err     error
				message string
			}{err: ErrValidation, message: "Title cannot be empty"},
		},
		{
			name: "short title",
			input: func(f *fixture) entity.TaskInput {
				return entity.TaskInput{Title: "ab", ProjectID: f.work}
			},
			want: struct {
				success bool
				err     error
				message string
			}{err: ErrValidation, message: "Title must be at least 3 characters"},
		},
		{
			name: "long title",
			input: func(f *fixture) entity.TaskInput {
				return entity.TaskInput{Title: strings.Repeat("x", 201), ProjectID: f.work}
			},
			want: struct {
				success bool
				err     error
				message string
			}{err: ErrValidation, message: "Title must be less than 200 characters"},
		},
		{
			name: "long description",
			input: func(f *fixture) entity.TaskInput {
				return entity.TaskInput{Title: "Write report", Description: strings.Repeat("d", 1001), ProjectID: f.work}
			},
			want: struct {
				success bool
				err     error
				message string
			}{err: ErrValidation, message: "Description must be less than 1000 characters"},
		},
		{
			name: "unknown project",
			input: func(f *fixture) entity.TaskInput {
				return entity.TaskInput{Title: "Buy milk", ProjectID: security.NewID()}
			},
			want: struct {
				success bool
				err     error
				message string
			}{err: ErrValidation, message: "Invalid project selected"},
		},
		{
			name: "bad priority",
			input: func(f *fixture) entity.TaskInput {
				return entity.TaskInput{Title: "Buy milk", ProjectID: f.work, Priority: "urgent"}
			},
			want: struct {
				success bool
				err     error
				message string
			}{err: ErrValidation, message: "Priority must be one of low, medium, high"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			before := f.store.Snapshot()

			res := f.store.AddTask(tt.input(f))

			assert.Equal(t, tt.want.success, res.Success)
			if tt.want.success {
				assert.NoError(t, res.Err())
				assert.True(t, security.IsValidUUID(res.ID))
				return
			}
			assert.Equal(t, tt.want.message, res.Error)
			assert.True(t, errors.Is(res.Err(), tt.want.err))
			assert.Equal(t, before, f.store.Snapshot())
		})
	}
}

func TestAddTaskSanitizesAndPrepends(t *testing.T) {
	f := newFixture(t)
	due := testNow.Add(48 * time.Hour)

	first := f.addTask(t, entity.TaskInput{Title: "First task"})
	second := f.addTask(t, entity.TaskInput{
		Title:       "  <b>Second</b> task ",
		Description: " <i>details</i> ",
		DueDate:     &due,
		Tags:        []string{"home", "", "home", "<em>errand</em>"},
	})

	tasks := f.store.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, second, tasks[0].ID)
	assert.Equal(t, first, tasks[1].ID)

	got := tasks[0]
	assert.Equal(t, "Second task", got.Title)
	assert.Equal(t, "details", got.Description)
	assert.Equal(t, []string{"home", "errand"}, got.Tags)
	assert.Equal(t, entity.PriorityMedium, got.Priority)
	assert.Equal(t, testNow, got.CreatedAt)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
	assert.False(t, got.Completed)

	assert.Equal(t, 2, f.count(t, f.work))
	assert.Equal(t, 0, f.count(t, f.home))
}

func TestAddTaskAppearsOnceAtFrontOfAllView(t *testing.T) {
	f := newFixture(t)
	f.store.SetCurrentView(entity.ViewAll)
	f.addTask(t, entity.TaskInput{Title: "Older task"})

	id := f.addTask(t, entity.TaskInput{Title: "Newest task"})

	filtered := f.store.FilteredTasks()
	require.Len(t, filtered, 2)
	assert.Equal(t, id, filtered[0].ID)
	seen := 0
	for _, task := range filtered {
		if task.ID == id {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestBuyMilkScenario(t *testing.T) {
	s := New(
		WithRateLimiter(security.NewRateLimiter(10, time.Minute)),
		WithProjects(entity.Project{ID: "p1", Name: "Work"}),
	)
	s.SetCurrentView(entity.ViewAll)

	res := s.AddTask(entity.TaskInput{Title: "Buy milk", ProjectID: "p1", Priority: entity.PriorityLow, Tags: []string{}})
	require.True(t, res.Success)

	filtered := s.FilteredTasks()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Buy milk", filtered[0].Title)
	p, _ := s.Project("p1")
	assert.Equal(t, 1, p.TaskCount)

	res = s.AddTask(entity.TaskInput{Title: "ab", ProjectID: "p1", Priority: entity.PriorityLow})
	assert.False(t, res.Success)
	assert.Equal(t, "Title must be at least 3 characters", res.Error)
	assert.Len(t, s.Tasks(), 1)
}

func TestAddTaskRateLimited(t *testing.T) {
	clock := testNow
	f := newFixture(t, WithRateLimiter(security.NewRateLimiter(10, time.Minute,
		security.WithClock(func() time.Time { return clock }))))

	for i := 0; i < 10; i++ {
		f.addTask(t, entity.TaskInput{Title: "Task number"})
	}
	before := f.store.Snapshot()

	res := f.store.AddTask(entity.TaskInput{Title: "One too many", ProjectID: f.work})
	assert.False(t, res.Success)
	assert.Equal(t, "Too many requests. Please wait a moment.", res.Error)
	assert.True(t, errors.Is(res.Err(), ErrRateLimited))
	assert.Equal(t, before, f.store.Snapshot())

	// other mutation kinds are counted separately
	assert.True(t, f.store.AddProject(entity.ProjectInput{Name: "Errands"}).Success)

	clock = clock.Add(time.Minute)
	assert.True(t, f.store.AddTask(entity.TaskInput{Title: "Next window", ProjectID: f.work}).Success)
}

func TestUpdateTask(t *testing.T) {
	f := newFixture(t)
	id := f.addTask(t, entity.TaskInput{Title: "Draft plan", Tags: []string{"q1"}})
	created, _ := f.store.Task(id)
	due := testNow.Add(time.Hour)

	res := f.store.UpdateTask(id, entity.TaskPatch{
		Title:       ptr(" <b>Final</b> plan "),
		Description: ptr("with numbers"),
		Priority:    ptr(entity.PriorityHigh),
		Completed:   ptr(true),
		DueDate:     &due,
		Tags:        []string{"q2", "q2", " "},
		SetTags:     true,
	})
	require.True(t, res.Success, res.Error)

	got, ok := f.store.Task(id)
	require.True(t, ok)
	assert.Equal(t, "Final plan", got.Title)
	assert.Equal(t, "with numbers", got.Description)
	assert.Equal(t, entity.PriorityHigh, got.Priority)
	assert.True(t, got.Completed)
	assert.Equal(t, due, *got.DueDate)
	assert.Equal(t, []string{"q2"}, got.Tags)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Equal(t, created.ProjectID, got.ProjectID)

	res = f.store.UpdateTask(id, entity.TaskPatch{ClearDueDate: true})
	require.True(t, res.Success)
	got, _ = f.store.Task(id)
	assert.Nil(t, got.DueDate)
}

func TestUpdateTaskFailures(t *testing.T) {
	tests := []struct {
		name    string
		id      func(f *fixture, existing string) string
		patch   func(f *fixture) entity.TaskPatch
		err     error
		message string
	}{
		{
			name:    "malformed id",
			id:      func(*fixture, string) string { return "task-1" },
			patch:   func(*fixture) entity.TaskPatch { return entity.TaskPatch{} },
			err:     ErrValidation,
			message: "Invalid task ID",
		},
		{
			name:    "unknown id",
			id:      func(*fixture, string) string { return security.NewID() },
			patch:   func(*fixture) entity.TaskPatch { return entity.TaskPatch{} },
			err:     ErrNotFound,
			message: "Task not found",
		},
		{
			name:    "short title",
			id:      func(_ *fixture, existing string) string { return existing },
			patch:   func(*fixture) entity.TaskPatch { return entity.TaskPatch{Title: ptr("no")} },
			err:     ErrValidation,
			message: "Title must be at least 3 characters",
		},
		{
			name: "long description",
			id:   func(_ *fixture, existing string) string { return existing },
			patch: func(*fixture) entity.TaskPatch {
				return entity.TaskPatch{Description: ptr(strings.Repeat("d", 1001))}
			},
			err:     ErrValidation,
			message: "Description must be less than 1000 characters",
		},
		{
			name: "unknown project",
			id:   func(_ *fixture, existing string) string { return existing },
			patch: func(*fixture) entity.TaskPatch {
				return entity.TaskPatch{Title: ptr("Renamed"), ProjectID: ptr(security.NewID())}
			},
			err:     ErrValidation,
			message: "Invalid project selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			existing := f.addTask(t, entity.TaskInput{Title: "Existing task"})
			before := f.store.Snapshot()

			res := f.store.UpdateTask(tt.id(f, existing), tt.patch(f))

			assert.False(t, res.Success)
			assert.Equal(t, tt.message, res.Error)
			assert.True(t, errors.Is(res.Err(), tt.err))
			assert.Equal(t, before, f.store.Snapshot())
		})
	}
}

func TestUpdateTaskMovesProjectCount(t *testing.T) {
	f := newFixture(t)
	id := f.addTask(t, entity.TaskInput{Title: "Move me"})
	f.addTask(t, entity.TaskInput{Title: "Stay here"})
	require.Equal(t, 2, f.count(t, f.work))

	require.True(t, f.store.UpdateTask(id, entity.TaskPatch{ProjectID: ptr(f.home)}).Success)
	assert.Equal(t, 1, f.count(t, f.work))
	assert.Equal(t, 1, f.count(t, f.home))

	// same project again changes nothing
	require.True(t, f.store.UpdateTask(id, entity.TaskPatch{ProjectID: ptr(f.home)}).Success)
	assert.Equal(t, 1, f.count(t, f.work))
	assert.Equal(t, 1, f.count(t, f.home))
}

func TestDeleteTask(t *testing.T) {
	f := newFixture(t)
	id := f.addTask(t, entity.TaskInput{Title: "Throw away"})
	keep := f.addTask(t, entity.TaskInput{Title: "Keep me"})

	res := f.store.DeleteTask(id)
	require.True(t, res.Success)

	_, ok := f.store.Task(id)
	assert.False(t, ok)
	_, ok = f.store.Task(keep)
	assert.True(t, ok)
	assert.Equal(t, 1, f.count(t, f.work))

	res = f.store.DeleteTask(id)
	assert.False(t, res.Success)
	assert.Equal(t, "Task not found", res.Error)
	assert.True(t, errors.Is(res.Err(), ErrNotFound))

	res = f.store.DeleteTask("nope")
	assert.Equal(t, "Invalid task ID", res.Error)
}

func TestDeleteTaskCountFloorsAtZero(t *testing.T) {
	f := newFixture(t)
	id := security.NewID()
	f.store.Replace(entity.Snapshot{
		Tasks:    []entity.Task{{ID: id, Title: "Orphan count", ProjectID: f.work, Priority: entity.PriorityLow}},
		Projects: []entity.Project{{ID: f.work, Name: "Work", TaskCount: 0}},
	})

	require.True(t, f.store.DeleteTask(id).Success)
	assert.Equal(t, 0, f.count(t, f.work))
}

func TestToggleTask(t *testing.T) {
	f := newFixture(t)
	id := f.addTask(t, entity.TaskInput{Title: "Flip me", Tags: []string{"a"}})
	before, _ := f.store.Task(id)
	countBefore := f.count(t, f.work)

	assert.True(t, f.store.ToggleTask(id))
	mid, _ := f.store.Task(id)
	assert.True(t, mid.Completed)
	assert.Equal(t, countBefore, f.count(t, f.work))

	assert.True(t, f.store.ToggleTask(id))
	after, _ := f.store.Task(id)
	assert.Equal(t, before, after)

	snap := f.store.Snapshot()
	assert.False(t, f.store.ToggleTask("bad-id"))
	assert.False(t, f.store.ToggleTask(security.NewID()))
	assert.Equal(t, snap, f.store.Snapshot())
}

func TestAddProject(t *testing.T) {
	f := newFixture(t)

	res := f.store.AddProject(entity.ProjectInput{Name: " <b>Side</b> gig ", Color: "#fff", Icon: "Star"})
	require.True(t, res.Success, res.Error)

	p, ok := f.store.Project(res.ID)
	require.True(t, ok)
	assert.Equal(t, "Side gig", p.Name)
	assert.Equal(t, "#fff", p.Color)
	assert.Equal(t, "Star", p.Icon)
	assert.Zero(t, p.TaskCount)

	projects := f.store.Projects()
	assert.Equal(t, res.ID, projects[len(projects)-1].ID)

	res = f.store.AddProject(entity.ProjectInput{Name: "x"})
	assert.Equal(t, "Project name must be at least 2 characters", res.Error)
	res = f.store.AddProject(entity.ProjectInput{Name: ""})
	assert.Equal(t, "Project name cannot be empty", res.Error)
	res = f.store.AddProject(entity.ProjectInput{Name: strings.Repeat("n", 101)})
	assert.Equal(t, "Project name must be less than 100 characters", res.Error)
	assert.Len(t, f.store.Projects(), 3)
}

func TestUpdateProject(t *testing.T) {
	f := newFixture(t)
	f.addTask(t, entity.TaskInput{Title: "Counted task"})

	res := f.store.UpdateProject(f.work, entity.ProjectPatch{Name: ptr("Office"), Icon: ptr("Building")})
	require.True(t, res.Success, res.Error)

	p, _ := f.store.Project(f.work)
	assert.Equal(t, "Office", p.Name)
	assert.Equal(t, "Building", p.Icon)
	assert.Equal(t, "#9E7FFF", p.Color)
	assert.Equal(t, 1, p.TaskCount)

	res = f.store.UpdateProject(f.work, entity.ProjectPatch{Name: ptr("O")})
	assert.Equal(t, "Project name must be at least 2 characters", res.Error)
	res = f.store.UpdateProject(security.NewID(), entity.ProjectPatch{})
	assert.True(t, errors.Is(res.Err(), ErrNotFound))
	res = f.store.UpdateProject("p1", entity.ProjectPatch{})
	assert.Equal(t, "Invalid project ID", res.Error)
}

func TestDeleteProjectCascades(t *testing.T) {
	f := newFixture(t)
	var workTasks []string
	for _, title := range []string{"Report", "Slides", "Review"} {
		workTasks = append(workTasks, f.addTask(t, entity.TaskInput{Title: title}))
	}
	homeTask := f.addTask(t, entity.TaskInput{Title: "Laundry", ProjectID: f.home})
	f.store.SetSelectedProject(f.work)

	res := f.store.DeleteProject(f.work)
	require.True(t, res.Success, res.Error)

	for _, id := range workTasks {
		_, ok := f.store.Task(id)
		assert.False(t, ok)
	}
	_, ok := f.store.Task(homeTask)
	assert.True(t, ok)
	_, ok = f.store.Project(f.work)
	assert.False(t, ok)
	assert.Empty(t, f.store.SelectedProject())
	assert.Equal(t, 1, f.count(t, f.home))

	res = f.store.DeleteProject(f.work)
	assert.True(t, errors.Is(res.Err(), ErrNotFound))
}

func TestTaskCountMatchesTasks(t *testing.T) {
	f := newFixture(t)
	ids := []string{
		f.addTask(t, entity.TaskInput{Title: "One task"}),
		f.addTask(t, entity.TaskInput{Title: "Two task"}),
		f.addTask(t, entity.TaskInput{Title: "Three task", ProjectID: f.home}),
	}
	f.store.UpdateTask(ids[0], entity.TaskPatch{ProjectID: ptr(f.home)})
	f.store.DeleteTask(ids[1])
	f.store.ToggleTask(ids[2])

	for _, p := range f.store.Projects() {
		n := 0
		for _, task := range f.store.Tasks() {
			if task.ProjectID == p.ID {
				n++
			}
		}
		assert.Equal(t, n, p.TaskCount, p.Name)
	}
}

func TestNavigation(t *testing.T) {
	f := newFixture(t)

	f.store.SetSelectedProject(f.work)
	assert.Equal(t, f.work, f.store.SelectedProject())
	assert.Equal(t, entity.ViewAll, f.store.CurrentView())

	f.store.SetCurrentView(entity.ViewUpcoming)
	assert.Equal(t, entity.ViewUpcoming, f.store.CurrentView())
	assert.Empty(t, f.store.SelectedProject())

	f.store.SetCurrentView("someday")
	assert.Equal(t, entity.ViewUpcoming, f.store.CurrentView())

	f.store.SetSelectedProject("not-a-uuid")
	assert.Empty(t, f.store.SelectedProject())
	assert.Equal(t, entity.ViewUpcoming, f.store.CurrentView())

	f.store.SetSelectedProject(f.home)
	f.store.SetSelectedProject("")
	assert.Empty(t, f.store.SelectedProject())
	assert.Equal(t, entity.ViewAll, f.store.CurrentView())

	f.store.SetSearchQuery("  <b>milk</b> " + strings.Repeat("z", 300))
	assert.Len(t, []rune(f.store.SearchQuery()), 200)
	assert.True(t, strings.HasPrefix(f.store.SearchQuery(), "milk "))
}

func TestSnapshotReplace(t *testing.T) {
	f := newFixture(t)
	f.addTask(t, entity.TaskInput{Title: "Persist me", Tags: []string{"x"}})
	f.store.SetSearchQuery("persist")
	snap := f.store.Snapshot()

	snap.Tasks[0].Tags[0] = "mutated"
	got, _ := f.store.Task(snap.Tasks[0].ID)
	assert.Equal(t, []string{"x"}, got.Tags)

	other := New()
	other.Replace(f.store.Snapshot())
	assert.Equal(t, f.store.Snapshot(), other.Snapshot())

	other.Replace(entity.Snapshot{CurrentView: "bogus"})
	assert.Equal(t, entity.ViewToday, other.CurrentView())
	assert.Empty(t, other.Tasks())
}

func TestRecountTasks(t *testing.T) {
	s := New()
	s.Replace(entity.Snapshot{
		Projects: []entity.Project{{ID: "a", Name: "A", TaskCount: 7}, {ID: "b", Name: "B", TaskCount: 1}},
		Tasks: []entity.Task{
			{ID: "1", Title: "t1", ProjectID: "a"},
			{ID: "2", Title: "t2", ProjectID: "a"},
		},
	})

	s.RecountTasks()

	a, _ := s.Project("a")
	b, _ := s.Project("b")
	assert.Equal(t, 2, a.TaskCount)
	assert.Equal(t, 0, b.TaskCount)
}

func TestPanicBecomesResult(t *testing.T) {
	f := newFixture(t, WithIDGenerator(func() string { panic("entropy exhausted") }))
	before := f.store.Snapshot()

	res := f.store.AddTask(entity.TaskInput{Title: "Never stored", ProjectID: f.work})

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to add task", res.Error)
	assert.True(t, errors.Is(res.Err(), ErrInternal))
	assert.Equal(t, before, f.store.Snapshot())
}
