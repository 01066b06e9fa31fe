package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
	"github.com/heartmarshall/sweetshop-backend/internal/service/account"
)

// accountService defines the minimal interface needed by AuthHandler.
type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc accountService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

var (
	registerErrors = errorDetails{conflict: "Email or username already registered"}
	loginErrors    = errorDetails{unauthenticated: "Incorrect username or password"}
)

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w)
		return
	}

	user, err := h.svc.Register(r.Context(), account.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err, registerErrors)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{ID: user.ID, Email: user.Email})
}

// Login handles POST /api/auth/login. The form field "username" carries the email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeInvalidBody(w)
		return
	}

	result, err := h.svc.Login(r.Context(), account.LoginInput{
		Email:    r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err, loginErrors)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: result.AccessToken, TokenType: "bearer"})
}
