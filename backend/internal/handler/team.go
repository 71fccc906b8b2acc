package handler

import (
	"net/http"

	"github.com/cosmiccommons/c3site/shared/api"
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/utils"
)

func (h *Handler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.TeamListResponse{Members: members})
}

func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var body api.CreateTeamMemberRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	member, err := h.team.Create(r.Context(), domain.TeamMemberCreationData{
		Name:         body.Name,
		Title:        body.Title,
		Bio:          body.Bio,
		ImageUrl:     body.ImageUrl,
		LinkedinUrl:  body.LinkedinUrl,
		TwitterUrl:   body.TwitterUrl,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeCreated(w, "team_member", member)
}

func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "memberId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateTeamMemberRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	member, err := h.team.Update(r.Context(), id, domain.TeamMemberUpdate{
		Name:         body.Name,
		Title:        body.Title,
		Bio:          body.Bio,
		ImageUrl:     body.ImageUrl,
		LinkedinUrl:  body.LinkedinUrl,
		TwitterUrl:   body.TwitterUrl,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, member)
}

func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "memberId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.team.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeDeleted(w)
}
