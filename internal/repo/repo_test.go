package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"VenuePOS/internal/model"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозиториев
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(
		&model.User{}, &model.Room{}, &model.Printer{},
		&model.Category{}, &model.Item{}, &model.Order{}, &model.OrderItem{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func TestRoomRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepository(newTestDB(t))

	room := &model.Room{Name: "Hall A", Floor: 1, Capacity: 20}
	assert.NoError(t, r.Create(ctx, room))
	assert.NotZero(t, room.ID, "БД должна присвоить id")

	got, err := r.GetByID(ctx, room.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hall A", got.Name)

	room.Name = "Hall B"
	assert.NoError(t, r.Update(ctx, room))
	got, err = r.GetByID(ctx, room.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hall B", got.Name)

	assert.NoError(t, r.Delete(ctx, room.ID))
	_, err = r.GetByID(ctx, room.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// повторное удаление — not found
	assert.True(t, errors.Is(r.Delete(ctx, room.ID), gorm.ErrRecordNotFound))
}

func TestUserRepo_GetByUsernameMissingIsNilNil(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository(newTestDB(t))

	u, err := r.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, u)

	created, err := r.Create(ctx, &model.User{Username: "alice", Password: "x", Role: model.RoleManager})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	u, err = r.GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestOrderRepo_ListItemsNestedRead(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := NewOrderRepository(db)

	order := &model.Order{RoomID: 1, Status: model.OrderStatusOpen, Items: []model.OrderItem{
		{ItemID: 10, Quantity: 2, Price: 5.5},
		{ItemID: 11, Quantity: 1, Price: 3},
	}}
	assert.NoError(t, r.Create(ctx, order))

	items, err := r.ListItems(ctx, order.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, order.ID, items[0].OrderID)

	// несуществующий заказ — not found, а не пустой список
	_, err = r.ListItems(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCategoryRepo_ListOrdered(t *testing.T) {
	ctx := context.Background()
	r := NewCategoryRepository(newTestDB(t))

	for _, name := range []string{"Drinks", "Food", "Desserts"} {
		assert.NoError(t, r.Create(ctx, &model.Category{Name: name}))
	}
	categories, err := r.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Equal(t, "Drinks", categories[0].Name)
}
