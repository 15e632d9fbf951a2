package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondWithJSON writes a JSON response with the given status code and
// data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithText writes a plain-text response with the given status code
// and body. The token endpoints and two of the error paths answer in plain
// text rather than JSON.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("failed to write text response", "error", err)
	}
}

// MessageResponse is the JSON body shape shared by all structured error
// responses: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
