package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	"github.com/cosmiccommons/c3site/shared/logger"
	"github.com/cosmiccommons/c3site/shared/validation"
)

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// WriteErrorAndStatusCode maps err onto a response. Validation failures are
// written as a per-field JSON body, typed errors carry their own status,
// anything else is a 500 and gets logged.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		WriteJSON(w, http.StatusBadRequest, errorBody{Message: "Validation failed", Errors: fieldErrs})
		return
	}
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("internal error", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// DecodeValidate decodes a JSON body into body and runs struct validation.
// Malformed JSON is a 400 with a plain message, failed validation returns
// validation.FieldErrors.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	return validation.Struct(body)
}

func Decode(r io.ReadCloser, body any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return internal_errors.BadRequest("Body is invalid json")
	}
	return nil
}
