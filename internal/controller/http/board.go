package http

import (
	"net/http"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

// GetBoard возвращает текущий вид, выбранный проект и поисковый запрос.
// @Summary      Состояние доски
// @Tags         board
// @Produce      json
// @Success      200  {object} entity.BoardState
// @Router       /board [get]
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.board.Board(r.Context()))
}

// SetView переключает вид и сбрасывает выбор проекта.
// @Summary      Выбрать вид
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        view body     setViewRequest true "Вид"
// @Success      200  {object} entity.BoardState
// @Failure      400  {object} store.Result "Неизвестный вид"
// @Router       /board/view [put]
func (h *BoardHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.board.SetCurrentView(r.Context(), entity.ViewMode(req.View))
	respondBoard(w, state, err)
}

// SelectProject выбирает проект; пустой ID снимает выбор.
// @Summary      Выбрать проект
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        project body     selectProjectRequest true "ID проекта"
// @Success      200     {object} entity.BoardState
// @Router       /board/project [put]
func (h *BoardHandler) SelectProject(w http.ResponseWriter, r *http.Request) {
	var req selectProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.board.SetSelectedProject(r.Context(), req.ProjectID)
	respondBoard(w, state, err)
}

// SetSearch задает поисковый запрос.
// @Summary      Поиск
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        query body     setSearchRequest true "Поисковый запрос"
// @Success      200   {object} entity.BoardState
// @Router       /board/search [put]
func (h *BoardHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req setSearchRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.board.SetSearchQuery(r.Context(), req.Query)
	respondBoard(w, state, err)
}

func respondBoard(w http.ResponseWriter, state entity.BoardState, err error) {
	if err != nil {
		logger.Log.WithError(err).Error("Failed to persist board")
		respondWithError(w, http.StatusInternalServerError, msgPersistence)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}
