package main

import (
	"net/http"

	"go.uber.org/zap"

	"VenuePOS/internal/config"
	"VenuePOS/internal/handlers"
	"VenuePOS/internal/middleware"
	"VenuePOS/internal/repo"
	"VenuePOS/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB))

	h := handlers.NewHandler(
		userService,
		repo.NewRoomRepository(gormDB),
		repo.NewPrinterRepository(gormDB),
		repo.NewItemRepository(gormDB),
		repo.NewCategoryRepository(gormDB),
		repo.NewOrderRepository(gormDB),
		sugar,
		cfg,
	)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"UploadDir", cfg.UploadDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
