package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/KarpovAlexandrGo/taskboard/internal/store"
	"github.com/KarpovAlexandrGo/taskboard/internal/usecase"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

const msgPersistence = "Changes applied but could not be saved"

// BoardHandler обрабатывает HTTP-запросы для задач, проектов и состояния доски.
type BoardHandler struct {
	board    usecase.BoardUseCase
	validate *validator.Validate
}

// NewBoardHandler создает новый экземпляр BoardHandler.
func NewBoardHandler(board usecase.BoardUseCase) *BoardHandler {
	return &BoardHandler{
		board:    board,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes регистрирует маршруты API.
func (h *BoardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/filtered", h.FilteredTasks)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTask)
			r.Patch("/", h.UpdateTask)
			r.Delete("/", h.DeleteTask)
			r.Post("/toggle", h.ToggleTask)
		})
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.ListProjects)
		r.Post("/", h.CreateProject)
		r.Route("/{id}", func(r chi.Router) {
			r.Patch("/", h.UpdateProject)
			r.Delete("/", h.DeleteProject)
		})
	})

	r.Route("/board", func(r chi.Router) {
		r.Get("/", h.GetBoard)
		r.Put("/view", h.SetView)
		r.Put("/project", h.SelectProject)
		r.Put("/search", h.SetSearch)
	})
}

// decode читает тело запроса и проверяет его валидатором.
func (h *BoardHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode request body")
		respondWithResult(w, http.StatusBadRequest, store.Result{Error: "Invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		logger.Log.WithError(err).Warn("Request validation failed")
		respondWithResult(w, http.StatusBadRequest, store.Result{Error: validationMessage(err)})
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}
	switch field := verrs[0].Field(); field {
	case "Priority":
		return "Priority must be one of low, medium, high"
	case "View":
		return "View must be one of today, upcoming, all, completed"
	case "Tags":
		return "Too many tags"
	default:
		return field + " is invalid"
	}
}

// statusFor переводит результат операции в HTTP-статус.
func statusFor(res store.Result, success int) int {
	err := res.Err()
	switch {
	case err == nil:
		return success
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondMutation отвечает на изменяющий запрос конвертом Result.
func respondMutation(w http.ResponseWriter, op string, res store.Result, err error, success int) {
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"op": op}).WithError(err).Error("Failed to persist board")
		respondWithResult(w, http.StatusInternalServerError, store.Result{Error: msgPersistence, ID: res.ID})
		return
	}
	respondWithResult(w, statusFor(res, success), res)
}

func respondWithResult(w http.ResponseWriter, code int, res store.Result) {
	respondWithJSON(w, code, res)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Log.WithError(err).Error("Failed to encode response")
		}
	}
}
