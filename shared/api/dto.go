package api

// ErrorResponse is written for requests rejected by validation.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
