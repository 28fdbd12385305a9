package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/crmkit/custimport/internal/logging"
)

// ErrorResponse is the JSON body returned for failed requests. The
// technical error stays in the server log; clients get a short
// message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as the JSON response body.
func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("encode response", "path", r.URL.Path, "error", err)
	}
}

// respondError logs the technical error with request context and
// returns a generic JSON error to the client.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "customer store unavailable"})
}
