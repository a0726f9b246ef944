package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/medebd/medicine-api/logging"
)

// ListResponse is the envelope for every paginated endpoint.
type ListResponse struct {
	Status      bool `json:"status"`
	Details     any  `json:"details"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
}

// DetailResponse is the envelope for the single-record endpoint.
type DetailResponse struct {
	Status  bool `json:"status"`
	Details any  `json:"details"`
}

// ErrorResponse is the envelope for request failures.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response in the API's envelope
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{
		Status:  false,
		Message: message,
	})
}

// respondWithList wraps a result page in the common list envelope
func respondWithList(w http.ResponseWriter, details any, totalCount, totalPages, currentPage int) {
	RespondWithJSON(w, http.StatusOK, ListResponse{
		Status:      true,
		Details:     details,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	})
}
