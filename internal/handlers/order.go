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

// OrderHandler обрабатывает CRUD по заказам и чтение строк заказа.
type OrderHandler struct {
	Repo   repo.OrderRepository
	Logger *zap.SugaredLogger
}

// NewOrderHandler создаёт хендлер orders
func NewOrderHandler(r repo.OrderRepository, logger *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{Repo: r, Logger: logger}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List orders: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	order, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Get order: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	order.ID = 0
	if order.Status == "" {
		order.Status = model.OrderStatusOpen
	}
	if err := h.Repo.Create(r.Context(), &order); err != nil {
		h.Logger.Errorw("Create order: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	order.ID = id
	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Update order: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.Update(r.Context(), &order); err != nil {
		h.Logger.Errorw("Update order: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete order: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListItems отдаёт строки конкретного заказа.
func (h *OrderHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	items, err := h.Repo.ListItems(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("List order items: repo error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
