package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// userMessage strips the sentinel prefix from a wrapped error, leaving the
// part intended for the client ("validation error: Title is required" →
// "Title is required").
func userMessage(err error, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// writeServiceError maps service-layer sentinels onto HTTP statuses. The
// not-found branch never distinguishes "not yours" from "does not exist",
// and internal detail is logged but never returned to the client.
func (s *HTTPServer) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, userMessage(err, common.ErrorValidation))
	case errors.Is(err, common.ErrorEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	default:
		s.logger.Error(ctx, err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
