package handler

import (
	"net/http"

	"github.com/teamboard/teamboard/shared/api"
	"github.com/teamboard/teamboard/shared/domain"
	"github.com/teamboard/teamboard/shared/utils"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var body api.CreateTaskRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.task.Create(r.Context(), domain.TaskCreationData{
		Title:       body.Title,
		Description: body.Description,
		UserId:      body.UserId,
		BoardId:     body.BoardId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: id})
}

func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateTaskStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	task, err := h.task.UpdateStatus(r.Context(), id, domain.TaskStatus(body.Status))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, task)
}
