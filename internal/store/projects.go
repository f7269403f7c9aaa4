package store

import (
	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/internal/security"
)

const (
	colorMaxLength = 32
	iconMaxLength  = 64
)

func (s *Store) AddProject(in entity.ProjectInput) (res Result) {
	defer s.recoverTo("add project", &res)

	if !s.limiter.Allow(actionAddProject) {
		return fail(ErrRateLimited, msgRateLimited)
	}
	if err := security.ValidateProjectName(in.Name); err != nil {
		return invalid(err)
	}

	project := entity.Project{
		Name:  security.SanitizeText(in.Name, security.ProjectNameMaxLength),
		Color: security.SanitizeText(in.Color, colorMaxLength),
		Icon:  security.SanitizeText(in.Icon, iconMaxLength),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project.ID = s.newID()
	s.projects = append(s.projects, project)
	return succeed(project.ID)
}

func (s *Store) UpdateProject(id string, patch entity.ProjectPatch) (res Result) {
	defer s.recoverTo("update project", &res)

	if !s.validID(id) {
		return fail(ErrValidation, msgInvalidProjectID)
	}
	if !s.limiter.Allow(actionUpdateProject) {
		return fail(ErrRateLimited, msgRateLimited)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.projectIndex(id)
	if i < 0 {
		return fail(ErrNotFound, msgProjectNotFound)
	}
	updated := s.projects[i]

	if patch.Name != nil {
		if err := security.ValidateProjectName(*patch.Name); err != nil {
			return invalid(err)
		}
		updated.Name = security.SanitizeText(*patch.Name, security.ProjectNameMaxLength)
	}
	if patch.Color != nil {
		updated.Color = security.SanitizeText(*patch.Color, colorMaxLength)
	}
	if patch.Icon != nil {
		updated.Icon = security.SanitizeText(*patch.Icon, iconMaxLength)
	}

	s.projects[i] = updated
	return succeed("")
}

// DeleteProject removes the project together with every task that references it.
func (s *Store) DeleteProject(id string) (res Result) {
	defer s.recoverTo("delete project", &res)

	if !s.validID(id) {
		return fail(ErrValidation, msgInvalidProjectID)
	}
	if !s.limiter.Allow(actionDeleteProject) {
		return fail(ErrRateLimited, msgRateLimited)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.projectIndex(id)
	if i < 0 {
		return fail(ErrNotFound, msgProjectNotFound)
	}

	tasks := make([]entity.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ProjectID != id {
			tasks = append(tasks, t)
		}
	}

	s.projects = append(s.projects[:i:i], s.projects[i+1:]...)
	s.tasks = tasks
	if s.selectedProject == id {
		s.selectedProject = ""
	}
	return succeed("")
}
