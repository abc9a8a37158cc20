package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"VenuePOS/internal/model"
	"VenuePOS/internal/repo"
)

// PrinterHandler обрабатывает CRUD по принтерам.
type PrinterHandler struct {
	Repo   repo.PrinterRepository
	Logger *zap.SugaredLogger
}

// NewPrinterHandler создаёт хендлер printers
func NewPrinterHandler(r repo.PrinterRepository, logger *zap.SugaredLogger) *PrinterHandler {
	return &PrinterHandler{Repo: r, Logger: logger}
}

func (h *PrinterHandler) List(w http.ResponseWriter, r *http.Request) {
	printers, err := h.Repo.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List printers: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, printers)
}

func (h *PrinterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	printer, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "printer not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Get printer: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, printer)
}

func (h *PrinterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var printer model.Printer
	if err := json.NewDecoder(r.Body).Decode(&printer); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	printer.ID = 0
	if err := h.Repo.Create(r.Context(), &printer); err != nil {
		h.Logger.Errorw("Create printer: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, printer)
}

func (h *PrinterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var printer model.Printer
	if err := json.NewDecoder(r.Body).Decode(&printer); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	printer.ID = id
	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "printer not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Update printer: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.Update(r.Context(), &printer); err != nil {
		h.Logger.Errorw("Update printer: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, printer)
}

func (h *PrinterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "printer not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete printer: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
