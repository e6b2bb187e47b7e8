package controllers

import (
	"net/http"

	"blogyetu/app/middleware"
	"blogyetu/app/models"
	"blogyetu/app/services"
)

// AuthController handles registration, login, and identity lookups.
type AuthController struct {
	userService *services.UserService
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

type authResponse struct {
	Token string         `json:"token"`
	User  models.UserRef `json:"user"`
	Role  string         `json:"role"`
}

// Register handles creating a new account
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		sendErrorMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, token, err := ac.userService.Register(input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, authResponse{Token: token, User: user.Ref(), Role: user.Role})
}

// Login handles authenticating an existing account
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		sendErrorMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, token, err := ac.userService.Authenticate(input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, authResponse{Token: token, User: user.Ref(), Role: user.Role})
}

// Me returns the acting user resolved from the bearer token.
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"user": actor.Ref(),
		"role": actor.Role,
	})
}
