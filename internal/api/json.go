package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

// errResponse is the single-message error shape used for auth, not-found,
// and internal failures.
type errResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// errListResponse is the message-list shape used for validation and
// conflict failures.
type errListResponse struct {
	Errors []string `json:"errors"`
}

func errorsBody(msgs ...string) errListResponse {
	return errListResponse{Errors: msgs}
}
