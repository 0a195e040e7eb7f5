package helpers

import (
	"encoding/json"
	"net/http"
)

// ListResponse is the envelope for all listing endpoints. On a degraded
// store failure Items is an empty list and Error carries the cause; the
// HTTP status stays 200 so public listing pages keep rendering.
// swagger:model ListResponse
type ListResponse struct {
	Items any    `json:"items"`
	Error string `json:"error,omitempty"`
}

// CreateResponse is the envelope for successful form submissions.
// swagger:model CreateResponse
type CreateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse is the envelope for client errors and store failures on
// write endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes statusCode with an ErrorResponse body.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteItems writes a 200 ListResponse containing items.
func WriteItems(w http.ResponseWriter, items any) {
	WriteJSON(w, http.StatusOK, ListResponse{Items: items})
}

// WriteDegraded writes a 200 ListResponse with an empty item list and the
// error message. Listing endpoints never surface store failures as
// non-success statuses.
func WriteDegraded(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusOK, ListResponse{Items: []any{}, Error: err.Error()})
}
