package store

import (
	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/internal/security"
)

// AddTask validates and sanitizes in, then puts the new task at the front of the list.
func (s *Store) AddTask(in entity.TaskInput) (res Result) {
	defer s.recoverTo("add task", &res)

	if !s.limiter.Allow(actionAddTask) {
		return fail(ErrRateLimited, msgRateLimited)
	}
	if err := security.ValidateTaskTitle(in.Title); err != nil {
		return invalid(err)
	}
	if in.Description != "" {
		if err := security.ValidateDescription(in.Description); err != nil {
			return invalid(err)
		}
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.Valid() {
		return fail(ErrValidation, msgInvalidPriority)
	}

	task := entity.Task{
		Title:       security.SanitizeText(in.Title, security.TitleMaxLength),
		Description: security.SanitizeText(in.Description, security.DescriptionMaxLength),
		Completed:   in.Completed,
		Priority:    priority,
		ProjectID:   in.ProjectID,
		Tags:        security.SanitizeTags(in.Tags),
	}
	if in.DueDate != nil {
		due := *in.DueDate
		task.DueDate = &due
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.projectIndex(in.ProjectID)
	if p < 0 {
		return fail(ErrValidation, msgInvalidProject)
	}

	task.ID = s.newID()
	task.CreatedAt = s.now()

	s.tasks = append([]entity.Task{task}, s.tasks...)
	s.projects[p].TaskCount++
	return succeed(task.ID)
}

// UpdateTask applies patch to the task with the given id using the same rules as AddTask.
// Moving a task to another project moves one unit of taskCount with it.
func (s *Store) UpdateTask(id string, patch entity.TaskPatch) (res Result) {
	defer s.recoverTo("update task", &res)

	if !s.validID(id) {
		return fail(ErrValidation, msgInvalidTaskID)
	}
	if !s.limiter.Allow(actionUpdateTask) {
		return fail(ErrRateLimited, msgRateLimited)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return fail(ErrNotFound, msgTaskNotFound)
	}
	updated := s.tasks[i].Clone()

	if patch.Title != nil {
		if err := security.ValidateTaskTitle(*patch.Title); err != nil {
			return invalid(err)
		}
		updated.Title = security.SanitizeText(*patch.Title, security.TitleMaxLength)
	}
	if patch.Description != nil {
		if err := security.ValidateDescription(*patch.Description); err != nil {
			return invalid(err)
		}
		updated.Description = security.SanitizeText(*patch.Description, security.DescriptionMaxLength)
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return fail(ErrValidation, msgInvalidPriority)
		}
		updated.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		updated.Completed = *patch.Completed
	}
	switch {
	case patch.ClearDueDate:
		updated.DueDate = nil
	case patch.DueDate != nil:
		due := *patch.DueDate
		updated.DueDate = &due
	}
	if patch.SetTags {
		updated.Tags = security.SanitizeTags(patch.Tags)
	}

	oldProject, newProject := -1, -1
	if patch.ProjectID != nil {
		newProject = s.projectIndex(*patch.ProjectID)
		if newProject < 0 {
			return fail(ErrValidation, msgInvalidProject)
		}
		if *patch.ProjectID != updated.ProjectID {
			oldProject = s.projectIndex(updated.ProjectID)
			updated.ProjectID = *patch.ProjectID
		} else {
			newProject = -1
		}
	}

	s.tasks[i] = updated
	if newProject >= 0 {
		if oldProject >= 0 {
			s.projects[oldProject].TaskCount = max(0, s.projects[oldProject].TaskCount-1)
		}
		s.projects[newProject].TaskCount++
	}
	return succeed("")
}

func (s *Store) DeleteTask(id string) (res Result) {
	defer s.recoverTo("delete task", &res)

	if !s.validID(id) {
		return fail(ErrValidation, msgInvalidTaskID)
	}
	if !s.limiter.Allow(actionDeleteTask) {
		return fail(ErrRateLimited, msgRateLimited)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return fail(ErrNotFound, msgTaskNotFound)
	}
	projectID := s.tasks[i].ProjectID

	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	if p := s.projectIndex(projectID); p >= 0 {
		s.projects[p].TaskCount = max(0, s.projects[p].TaskCount-1)
	}
	return succeed("")
}

// ToggleTask flips the completed flag and reports whether a task was found.
// Invalid or unknown ids are a silent no-op.
func (s *Store) ToggleTask(id string) bool {
	if !s.validID(id) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}
