package handler

import (
	"net/http"

	"github.com/cosmiccommons/c3site/shared/api"
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/utils"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.user.CreateUserWithPassword(r.Context(), domain.Registration{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeCreated(w, "user", api.UserResponse{User: user})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "userId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.user.GetUser(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.UserResponse{User: user})
}
