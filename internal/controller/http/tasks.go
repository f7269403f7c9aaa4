package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KarpovAlexandrGo/taskboard/internal/usecase"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

// ListTasks возвращает все задачи.
// @Summary      Список задач
// @Description  Возвращает все задачи, новые первыми
// @Tags         tasks
// @Produce      json
// @Success      200  {array}  entity.Task
// @Router       /tasks [get]
func (h *BoardHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.board.Tasks(r.Context()))
}

// FilteredTasks возвращает задачи с учетом поиска, выбранного проекта и вида.
// @Summary      Отфильтрованные задачи
// @Description  Применяет поисковый запрос, затем фильтр проекта или вида
// @Tags         tasks
// @Produce      json
// @Success      200  {array}  entity.Task
// @Router       /tasks/filtered [get]
func (h *BoardHandler) FilteredTasks(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.board.FilteredTasks(r.Context()))
}

// GetTask обрабатывает получение задачи по ID.
// @Summary      Получить задачу
// @Description  Возвращает задачу по её ID
// @Tags         tasks
// @Produce      json
// @Param        id   path     string true "ID задачи"
// @Success      200  {object} entity.Task
// @Failure      404  {object} map[string]string "Задача не найдена"
// @Router       /tasks/{id} [get]
func (h *BoardHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	task, err := h.board.Task(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			logger.Log.WithField("id", id).Warn("Task not found")
			respondWithError(w, http.StatusNotFound, "Task not found")
		} else {
			logger.Log.WithField("id", id).WithError(err).Error("Failed to get task")
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, task)
}

// CreateTask обрабатывает создание новой задачи.
// @Summary      Создать задачу
// @Description  Очищает и проверяет поля, затем добавляет задачу в начало списка
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task body     createTaskRequest true "Данные задачи"
// @Success      201  {object} store.Result
// @Failure      400  {object} store.Result "Ошибка валидации"
// @Failure      429  {object} store.Result "Слишком много запросов"
// @Failure      500  {object} store.Result "Внутренняя ошибка сервера"
// @Router       /tasks [post]
func (h *BoardHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.board.AddTask(r.Context(), req.toInput())
	respondMutation(w, "add_task", res, err, http.StatusCreated)
}

// UpdateTask обрабатывает частичное обновление задачи.
// @Summary      Обновить задачу
// @Description  Применяет только переданные поля
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id   path     string            true "ID задачи"
// @Param        task body     updateTaskRequest true "Изменяемые поля"
// @Success      200  {object} store.Result
// @Failure      400  {object} store.Result "Ошибка валидации"
// @Failure      404  {object} store.Result "Задача не найдена"
// @Failure      429  {object} store.Result "Слишком много запросов"
// @Router       /tasks/{id} [patch]
func (h *BoardHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.board.UpdateTask(r.Context(), id, req.toPatch())
	respondMutation(w, "update_task", res, err, http.StatusOK)
}

// DeleteTask обрабатывает удаление задачи.
// @Summary      Удалить задачу
// @Description  Удаляет задачу по её ID и уменьшает счетчик проекта
// @Tags         tasks
// @Produce      json
// @Param        id   path     string true "ID задачи"
// @Success      200  {object} store.Result
// @Failure      400  {object} store.Result "Неверный формат ID"
// @Failure      404  {object} store.Result "Задача не найдена"
// @Failure      429  {object} store.Result "Слишком много запросов"
// @Router       /tasks/{id} [delete]
func (h *BoardHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.board.DeleteTask(r.Context(), id)
	respondMutation(w, "delete_task", res, err, http.StatusOK)
}

// ToggleTask переключает отметку о выполнении.
// @Summary      Переключить выполнение
// @Tags         tasks
// @Produce      json
// @Param        id   path     string true "ID задачи"
// @Success      200  {object} toggleResponse
// @Failure      404  {object} toggleResponse "Задача не найдена"
// @Router       /tasks/{id}/toggle [post]
func (h *BoardHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := h.board.ToggleTask(r.Context(), id)
	if err != nil {
		logger.Log.WithField("id", id).WithError(err).Error("Failed to persist board")
		respondWithError(w, http.StatusInternalServerError, msgPersistence)
		return
	}
	if !ok {
		respondWithJSON(w, http.StatusNotFound, toggleResponse{})
		return
	}

	task, err := h.board.Task(r.Context(), id)
	if err != nil {
		// задачу удалили между переключением и чтением
		respondWithJSON(w, http.StatusOK, toggleResponse{Success: true})
		return
	}
	respondWithJSON(w, http.StatusOK, toggleResponse{Success: true, Completed: task.Completed})
}
