package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/utils"
	"github.com/rs/zerolog"
)

type Authenticator interface {
	Signup(ctx context.Context, name, password, email string) error
	Login(ctx context.Context, email, password string) error
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// POST /api/signup
// Signup godoc
// @Summary Register a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body handlers.SignupInput true "New user"
// @Success 201 {object} utils.MessageBody
// @Failure 400 {object} utils.MessageBody "Invalid input or user already exists"
// @Router /api/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input SignupInput
	if err := decodeJSON(r, &input); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid input")
		return
	}

	err := h.auth.Signup(r.Context(), input.Name, input.Password, input.Email)
	switch {
	case err == nil:
		utils.Message(w, http.StatusCreated, "User created successfully")
	case errors.Is(err, apperr.ErrBadRequest), errors.Is(err, apperr.ErrConflict):
		utils.Message(w, http.StatusBadRequest, err.Error())
	default:
		h.fail(w, r, err)
	}
}

// POST /api/login
// Login godoc
// @Summary Check a user's credentials
// @Description Reports pass or fail only; no session or token is issued.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body handlers.LoginInput true "Credentials"
// @Success 200 {object} utils.MessageBody
// @Failure 401 {object} utils.MessageBody "User does not exist"
// @Failure 402 {object} utils.MessageBody "Invalid password"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginInput
	if err := decodeJSON(r, &input); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid input")
		return
	}

	err := h.auth.Login(r.Context(), input.Email, input.Password)
	switch {
	case err == nil:
		utils.Message(w, http.StatusOK, "Login successful")
	case errors.Is(err, apperr.ErrBadRequest):
		utils.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		utils.Message(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredential):
		utils.Message(w, http.StatusPaymentRequired, err.Error())
	default:
		h.fail(w, r, err)
	}
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("auth request failed")
	utils.Message(w, status, "Database error")
}

type SignupInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
