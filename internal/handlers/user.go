package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"VenuePOS/internal/config"
	"VenuePOS/internal/middleware"
	"VenuePOS/internal/model"
	"VenuePOS/internal/service"
)

// UserHandler обрабатывает логин и управление пользователями.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewUserHandler создаёт хендлер users
func NewUserHandler(svc *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger, Config: cfg}
}

// Login принимает application/x-www-form-urlencoded (username, password),
// при успехе ставит cookie auth_token и отдаёт пользователя.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("Login: invalid form", "error", err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	user, err := h.Service.Login(r.Context(), username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.Logger.Errorw("Login: service error", "username", username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// List отдаёт всех пользователей. Только для аутентифицированных.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	users, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List users: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Create регистрирует нового пользователя.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "missing username or password", http.StatusBadRequest)
		return
	}

	user, err := h.Service.CreateUser(r.Context(), req.Username, req.Password, model.Role(req.Role))
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		http.Error(w, "username already taken", http.StatusConflict)
		return
	case errors.Is(err, service.ErrInvalidRole):
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	case err != nil:
		h.Logger.Errorw("Create user: service error", "username", req.Username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type updateUserRequest struct {
	Role string `json:"role"`
}

// Update меняет роль пользователя.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.Service.UpdateRole(r.Context(), id, model.Role(req.Role))
	switch {
	case errors.Is(err, service.ErrInvalidRole):
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	case err != nil:
		h.Logger.Errorw("Update user: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Delete удаляет пользователя по id.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete user: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
