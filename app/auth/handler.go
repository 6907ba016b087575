// Package auth implements registration and login, and issues the
// bearer tokens the rest of the API authorizes against.
package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/alirezadev/shop-api/app/httpx"
	"github.com/alirezadev/shop-api/models"
	"github.com/alirezadev/shop-api/pkg/token"
)

var validate = validator.New()

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type UserProvider interface {
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Add(user *models.User) error
}

type AuthHandler struct {
	repo   UserProvider
	tokens token.Config
}

func NewAuthHandler(repo UserProvider, tokens token.Config) *AuthHandler {
	return &AuthHandler{repo: repo, tokens: tokens}
}

// HandleRegister creates a user with the default role. The submitted
// password is bcrypt-hashed before anything touches the store.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "username, valid email and a password of at least 8 characters are required")
		return
	}

	if err := h.checkAvailable(in.Username, in.Email); err != nil {
		if errors.Is(err, models.ErrUserExists) {
			httpx.WriteError(w, http.StatusConflict, "username or email already taken")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := h.repo.Add(user); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// HandleLogin exchanges verified credentials for a signed token plus
// the identity fields clients display. Unknown user and wrong password
// are indistinguishable to the caller.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.repo.GetByUsername(in.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	signed, err := token.Issue(h.tokens, user.ID, user.Email, user.Username, role)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:    signed,
		Username: user.Username,
		Email:    user.Email,
		Role:     role,
	})
}

// checkAvailable pre-checks the unique lookup keys so a duplicate
// registration fails with a clean conflict instead of a constraint
// error from the store.
func (h *AuthHandler) checkAvailable(username, email string) error {
	if _, err := h.repo.GetByUsername(username); err == nil {
		return models.ErrUserExists
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if _, err := h.repo.GetByEmail(email); err == nil {
		return models.ErrUserExists
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}
	return nil
}
