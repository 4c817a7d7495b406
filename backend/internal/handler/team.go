package handler

import (
	"context"
	"net/http"

	"github.com/teamboard/teamboard/shared/api"
	"github.com/teamboard/teamboard/shared/domain"
	"github.com/teamboard/teamboard/shared/utils"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var body api.CreateTeamRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.team.Create(r.Context(), domain.TeamCreationData{
		Name:        body.Name,
		Description: body.Description,
		Admin:       body.Admin,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: id})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.team.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.TeamListResponse{Teams: teams})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	team, err := h.team.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, team)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateTeamRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	team, err := h.team.Update(r.Context(), id, domain.TeamPatch{
		Name:        body.Name,
		Description: body.Description,
		Admin:       body.Admin,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, team)
}

func (h *Handler) AddTeamUsers(w http.ResponseWriter, r *http.Request) {
	h.changeTeamUsers(w, r, h.team.AddUsers)
}

func (h *Handler) RemoveTeamUsers(w http.ResponseWriter, r *http.Request) {
	h.changeTeamUsers(w, r, h.team.RemoveUsers)
}

func (h *Handler) changeTeamUsers(
	w http.ResponseWriter,
	r *http.Request,
	change func(ctx context.Context, id domain.TeamId, users []domain.UserId) (domain.Members, error),
) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.TeamUsersRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	members, err := change(r.Context(), id, body.Users)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.TeamMembersResponse{Users: members})
}

func (h *Handler) ListTeamUsers(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	users, err := h.team.Users(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.TeamUsersResponse{Users: users})
}

// ListTeamBoards returns the open boards of the team in {id}.
func (h *Handler) ListTeamBoards(w http.ResponseWriter, r *http.Request) {
	id, err := parseId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	boards, err := h.board.List(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.BoardListResponse{Boards: boards})
}
