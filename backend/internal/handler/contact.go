package handler

import (
	"net/http"

	"github.com/cosmiccommons/c3site/shared/api"
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/utils"
)

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var body api.CreateContactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	contact, err := h.contact.Create(r.Context(), domain.ContactCreationData{
		Name:          body.Name,
		Email:         body.Email,
		CommunityType: body.CommunityType,
		Message:       body.Message,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeCreated(w, "contact", contact)
}

func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contact.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ContactListResponse{Contacts: contacts})
}
