package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
)

// ListProjects возвращает проекты с количеством задач.
// @Summary      Список проектов
// @Tags         projects
// @Produce      json
// @Success      200  {array}  entity.Project
// @Router       /projects [get]
func (h *BoardHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.board.Projects(r.Context()))
}

// CreateProject обрабатывает создание проекта.
// @Summary      Создать проект
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project body     createProjectRequest true "Данные проекта"
// @Success      201     {object} store.Result
// @Failure      400     {object} store.Result "Ошибка валидации"
// @Failure      429     {object} store.Result "Слишком много запросов"
// @Router       /projects [post]
func (h *BoardHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.board.AddProject(r.Context(), entity.ProjectInput{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	respondMutation(w, "add_project", res, err, http.StatusCreated)
}

// UpdateProject обрабатывает частичное обновление проекта.
// @Summary      Обновить проект
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id      path     string               true "ID проекта"
// @Param        project body     updateProjectRequest true "Изменяемые поля"
// @Success      200     {object} store.Result
// @Failure      400     {object} store.Result "Ошибка валидации"
// @Failure      404     {object} store.Result "Проект не найден"
// @Router       /projects/{id} [patch]
func (h *BoardHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.board.UpdateProject(r.Context(), id, entity.ProjectPatch{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	respondMutation(w, "update_project", res, err, http.StatusOK)
}

// DeleteProject удаляет проект вместе с его задачами.
// @Summary      Удалить проект
// @Tags         projects
// @Produce      json
// @Param        id   path     string true "ID проекта"
// @Success      200  {object} store.Result
// @Failure      400  {object} store.Result "Неверный формат ID"
// @Failure      404  {object} store.Result "Проект не найден"
// @Router       /projects/{id} [delete]
func (h *BoardHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.board.DeleteProject(r.Context(), id)
	respondMutation(w, "delete_project", res, err, http.StatusOK)
}
