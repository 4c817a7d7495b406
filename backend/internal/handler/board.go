package handler

import (
	"net/http"

	"github.com/teamboard/teamboard/shared/api"
	"github.com/teamboard/teamboard/shared/domain"
	"github.com/teamboard/teamboard/shared/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.board.Create(r.Context(), domain.BoardCreationData{
		Name:        body.Name,
		Description: body.Description,
		TeamId:      body.TeamId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: id})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, board)
}

func (h *Handler) CloseBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Close(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, board)
}

func (h *Handler) ExportBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	file, err := h.board.Export(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.ExportResponse{OutFile: file})
}

func (h *Handler) ListBoardTasks(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	tasks, err := h.task.List(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.TaskListResponse{Tasks: tasks})
}
