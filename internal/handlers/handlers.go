package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VenuePOS/internal/config"
	"VenuePOS/internal/middleware"
	"VenuePOS/internal/repo"
	"VenuePOS/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	rooms repo.RoomRepository,
	printers repo.PrinterRepository,
	items repo.ItemRepository,
	categories repo.CategoryRepository,
	orders repo.OrderRepository,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg)
	roomHandler := NewRoomHandler(rooms, logger)
	printerHandler := NewPrinterHandler(printers, logger)
	itemHandler := NewItemHandler(items, logger, cfg)
	categoryHandler := NewCategoryHandler(categories, logger, cfg)
	orderHandler := NewOrderHandler(orders, logger)

	// User routes (список и изменения — только с auth_token)
	r.Post("/users/login", userHandler.Login)
	r.Get("/users", userHandler.List)
	r.Post("/users", userHandler.Create)
	r.Put("/users/{id}", userHandler.Update)
	r.Delete("/users/{id}", userHandler.Delete)

	// Rooms
	r.Get("/rooms", roomHandler.List)
	r.Post("/rooms", roomHandler.Create)
	r.Get("/rooms/{id}", roomHandler.Get)
	r.Put("/rooms/{id}", roomHandler.Update)
	r.Delete("/rooms/{id}", roomHandler.Delete)

	// Printers
	r.Get("/printers", printerHandler.List)
	r.Post("/printers", printerHandler.Create)
	r.Get("/printers/{id}", printerHandler.Get)
	r.Put("/printers/{id}", printerHandler.Update)
	r.Delete("/printers/{id}", printerHandler.Delete)

	// Items / Categories
	r.Get("/items", itemHandler.List)
	r.Post("/items", itemHandler.Create)
	r.Get("/items/{id}", itemHandler.Get)
	r.Put("/items/{id}", itemHandler.Update)
	r.Delete("/items/{id}", itemHandler.Delete)
	r.Get("/categories", categoryHandler.List)
	r.Post("/categories", categoryHandler.Create)
	r.Get("/categories/{id}", categoryHandler.Get)
	r.Put("/categories/{id}", categoryHandler.Update)
	r.Delete("/categories/{id}", categoryHandler.Delete)

	// Orders
	r.Get("/orders", orderHandler.List)
	r.Post("/orders", orderHandler.Create)
	r.Get("/orders/{id}", orderHandler.Get)
	r.Put("/orders/{id}", orderHandler.Update)
	r.Delete("/orders/{id}", orderHandler.Delete)
	r.Get("/orders/{id}/items", orderHandler.ListItems)

	return &Handler{Router: r}
}

// writeJSON пишет ответ в JSON с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
