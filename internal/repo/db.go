package repo

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"VenuePOS/internal/model"
)

// InitDB открывает БД по DSN и выполняет миграции. Postgres-DSN распознаётся
// по схеме/ключам; всё остальное трактуется как путь к sqlite-файлу
// (modernc — cgo-free драйвер, зарегистрированный под именем "sqlite").
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "venuepos.sqlite"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Printer{},
		&model.Category{},
		&model.Item{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
