package handlers

import (
	"DarkScope/internal/config"
	"DarkScope/internal/middleware"
	"DarkScope/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и сброс пароля.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

// RegisterRequest — тело запроса регистрации.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequest — тело запроса сброса пароля.
type ResetRequest struct {
	Email string `json:"email"`
}

// Register создаёт пользователя и сразу выставляет auth cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		case strings.HasPrefix(err.Error(), "validation:"):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.Logger.Errorw("Register: service error", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username})
}

// Login проверяет учётные данные и выставляет auth cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username})
}

// ResetPassword имитирует запрос письма для сброса пароля.
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	msg, err := h.UserService.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}

// Status — диагностика авторизации по cookie.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		writeJSON(w, http.StatusOK, map[string]any{"result": fmt.Sprintf("User ID = %d", uid)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": "anonymous"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
