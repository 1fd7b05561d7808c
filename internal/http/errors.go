package http

import (
	"errors"
	"net/http"

	"github.com/fittrackhq/fittrack/internal/service"
	"github.com/fittrackhq/fittrack/internal/store"
	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/fittrackhq/fittrack/pkg/httpx"
	"github.com/fittrackhq/fittrack/pkg/slogx"
)

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, fitsdk.ErrorResponse{Error: message})
}

// writeServiceError maps service-layer failures onto the wire contract.
// notFoundMsg names the resource for 404s so "workout not found" and
// "goal not found" read naturally.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	writeServiceErrorForm(w, r, err, notFoundMsg, nil)
}

// writeServiceErrorForm is writeServiceError with the submitted form values
// echoed on validation and conflict responses, so the client can redisplay
// the form. form must never contain password material.
func writeServiceErrorForm(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string, form map[string]string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, fitsdk.ErrorResponse{Errors: verr.Messages, Form: form})
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteJSON(w, http.StatusConflict, fitsdk.ErrorResponse{Error: "Username already taken", Form: form})
	case errors.Is(err, service.ErrEmailRegistered):
		httpx.WriteJSON(w, http.StatusConflict, fitsdk.ErrorResponse{Error: "Email already registered", Form: form})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
	}
}
