package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the user table the auth flow needs.
type UserStore interface {
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// maxBcryptPassword is the longest input bcrypt accepts.
const maxBcryptPassword = 72

type AuthService struct {
	users  UserStore
	cost   int
	logger zerolog.Logger
}

func NewAuthService(users UserStore, cost int, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, cost: cost, logger: logger}
}

// Signup stores a new user with a bcrypt hash of password. Names are
// compared exactly; a taken name is a conflict.
func (s *AuthService) Signup(ctx context.Context, name, password, email string) error {
	if strings.TrimSpace(name) == "" || password == "" || strings.TrimSpace(email) == "" {
		return apperr.New(apperr.ErrBadRequest, "Invalid input")
	}

	_, err := s.users.FindByName(ctx, name)
	switch {
	case err == nil:
		return apperr.New(apperr.ErrConflict, "User already exists")
	case errors.Is(err, apperr.ErrNotFound):
	default:
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword(passwordKey(password), s.cost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:     name,
		Password: string(hashed),
		Email:    email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return apperr.Wrap(apperr.ErrConflict, err, "User already exists")
		}
		return err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user created")
	return nil
}

// Login reports whether email and password identify a user. It issues no
// session; the caller only learns pass or fail.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return apperr.New(apperr.ErrBadRequest, "Invalid input")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Wrap(apperr.ErrNotFound, err, "User does not exist")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), passwordKey(password)); err != nil {
		return apperr.Wrap(apperr.ErrInvalidCredential, err, "Invalid password")
	}
	return nil
}

// passwordKey is the bcrypt input for password. Passwords past bcrypt's limit
// are reduced to the base64 of their SHA-256 so every byte still counts.
func passwordKey(password string) []byte {
	if len(password) <= maxBcryptPassword {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
