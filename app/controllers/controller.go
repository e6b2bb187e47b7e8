package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"blogyetu/app/repositories"
	"blogyetu/app/services"

	"github.com/go-playground/validator/v10"
)

// sendJSON writes data as a JSON response with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps a domain error to a transport status and message.
// Anything unrecognized becomes a 500 with a generic body; the detail
// goes to the log, never to the caller.
func sendError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendErrorMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, repositories.ErrSlugTaken):
		sendErrorMessage(w, http.StatusConflict, "a post with this title already exists")
	case errors.Is(err, repositories.ErrEmailTaken):
		sendErrorMessage(w, http.StatusConflict, "email already registered")
	case errors.Is(err, services.ErrCategoryNotFound):
		sendErrorMessage(w, http.StatusBadRequest, "one or more categories not found")
	case errors.Is(err, services.ErrNotAuthorized):
		sendErrorMessage(w, http.StatusUnauthorized, "not authorized")
	case errors.Is(err, services.ErrInvalidCredentials):
		sendErrorMessage(w, http.StatusUnauthorized, "invalid email or password")
	case errors.As(err, &verrs):
		sendErrorMessage(w, http.StatusBadRequest, verrs.Error())
	default:
		log.Printf("request failed: %v", err)
		sendErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func sendErrorMessage(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
