package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"VenuePOS/internal/config"
	"VenuePOS/internal/model"
	"VenuePOS/internal/repo"
)

// ItemHandler обрабатывает CRUD по позициям меню.
// Создание и обновление принимают как JSON, так и multipart/form-data
// (multipart — когда вместе с полями загружается картинка).
type ItemHandler struct {
	Repo   repo.ItemRepository
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(r repo.ItemRepository, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Repo: r, Logger: logger, Config: cfg}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List items: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	item, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Get item: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}
	item.ID = 0
	if err := h.Repo.Create(r.Context(), item); err != nil {
		h.Logger.Errorw("Create item: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}
	item.ID = id
	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Update item: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.Update(r.Context(), item); err != nil {
		h.Logger.Errorw("Update item: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete item: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeItem разбирает тело запроса (JSON или multipart) в модель.
// При ошибке сам пишет ответ и возвращает ok=false.
func (h *ItemHandler) decodeItem(w http.ResponseWriter, r *http.Request) (*model.Item, bool) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var item model.Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return nil, false
		}
		return &item, true
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("decodeItem: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return nil, false
	}
	item := model.Item{Name: r.FormValue("name")}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid price", http.StatusBadRequest)
			return nil, false
		}
		item.Price = price
	}
	if v := r.FormValue("category_id"); v != "" {
		categoryID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid category_id", http.StatusBadRequest)
			return nil, false
		}
		item.CategoryID = categoryID
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		name, saveErr := saveUpload(h.Config.UploadDir, header.Filename, file)
		if saveErr != nil {
			h.Logger.Errorw("decodeItem: failed to save image", "error", saveErr)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return nil, false
		}
		item.Image = name
	}
	return &item, true
}

// saveUpload сохраняет файл под случайным именем и возвращает это имя.
func saveUpload(dir, origName string, src multipart.File) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(origName)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
