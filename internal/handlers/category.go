package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"VenuePOS/internal/config"
	"VenuePOS/internal/model"
	"VenuePOS/internal/repo"
)

// CategoryHandler обрабатывает CRUD по категориям меню.
type CategoryHandler struct {
	Repo   repo.CategoryRepository
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewCategoryHandler создаёт хендлер categories
func NewCategoryHandler(r repo.CategoryRepository, logger *zap.SugaredLogger, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{Repo: r, Logger: logger, Config: cfg}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List categories: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	category, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Get category: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	category, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}
	category.ID = 0
	if err := h.Repo.Create(r.Context(), category); err != nil {
		h.Logger.Errorw("Create category: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	category, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}
	category.ID = id
	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Update category: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.Update(r.Context(), category); err != nil {
		h.Logger.Errorw("Update category: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete category: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) decodeCategory(w http.ResponseWriter, r *http.Request) (*model.Category, bool) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var category model.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return nil, false
		}
		return &category, true
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("decodeCategory: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return nil, false
	}
	category := model.Category{Name: r.FormValue("name")}
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		name, saveErr := saveUpload(h.Config.UploadDir, header.Filename, file)
		if saveErr != nil {
			h.Logger.Errorw("decodeCategory: failed to save image", "error", saveErr)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return nil, false
		}
		category.Image = name
	}
	return &category, true
}
