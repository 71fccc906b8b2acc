package handler

import (
	"net/http"
	"strconv"

	"github.com/cosmiccommons/c3site/shared/api"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	"github.com/cosmiccommons/c3site/shared/middleware/metrics"
	"github.com/cosmiccommons/c3site/shared/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func parseIdParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, internal_errors.BadRequest("Invalid " + name)
	}
	return id, nil
}

// parseOptionalUUIDQuery returns nil when the query parameter is absent.
func parseOptionalUUIDQuery(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, internal_errors.BadRequest("Invalid " + name)
	}
	return &id, nil
}

func parseOptionalBoolQuery(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, internal_errors.BadRequest("Invalid " + name)
	}
	return &v, nil
}

func toNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func writeCreated(w http.ResponseWriter, entity string, v any) {
	metrics.EntitiesCreated.WithLabelValues(entity).Inc()
	utils.WriteJSON(w, http.StatusCreated, v)
}

func writeDeleted(w http.ResponseWriter) {
	utils.WriteJSON(w, http.StatusOK, api.DeleteResponse{Deleted: true})
}
