package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"VenuePOS/internal/config"
	"VenuePOS/internal/handlers"
	"VenuePOS/internal/middleware"
	"VenuePOS/internal/model"
	"VenuePOS/internal/repo"
	"VenuePOS/internal/service"
)

// Local light mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) List(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Room); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Room); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRoomRepo) Create(ctx context.Context, room *model.Room) error {
	return m.Called(ctx, room).Error(0)
}
func (m *mockRoomRepo) Update(ctx context.Context, room *model.Room) error {
	return m.Called(ctx, room).Error(0)
}
func (m *mockRoomRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.RoomRepository = (*mockRoomRepo)(nil)

type mockPrinterRepo struct{ mock.Mock }

func (m *mockPrinterRepo) List(ctx context.Context) ([]model.Printer, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Printer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPrinterRepo) GetByID(ctx context.Context, id int64) (*model.Printer, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Printer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPrinterRepo) Create(ctx context.Context, printer *model.Printer) error {
	return m.Called(ctx, printer).Error(0)
}
func (m *mockPrinterRepo) Update(ctx context.Context, printer *model.Printer) error {
	return m.Called(ctx, printer).Error(0)
}
func (m *mockPrinterRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.PrinterRepository = (*mockPrinterRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}
func (m *mockItemRepo) Update(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}
func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) Create(ctx context.Context, category *model.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *mockCategoryRepo) Update(ctx context.Context, category *model.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderRepo) ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if v, ok := args.Get(0).([]model.OrderItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderRepo) Create(ctx context.Context, order *model.Order) error {
	return m.Called(ctx, order).Error(0)
}
func (m *mockOrderRepo) Update(ctx context.Context, order *model.Order) error {
	return m.Called(ctx, order).Error(0)
}
func (m *mockOrderRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.OrderRepository = (*mockOrderRepo)(nil)

// testMocks собирает все мок-репозитории одного роутера.
type testMocks struct {
	users      *mockUserRepo
	rooms      *mockRoomRepo
	printers   *mockPrinterRepo
	items      *mockItemRepo
	categories *mockCategoryRepo
	orders     *mockOrderRepo
}

func newTestRouter(t *testing.T) (http.Handler, *config.Config, *testMocks) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", UploadDir: t.TempDir()}
	logger := zap.NewNop().Sugar()
	m := &testMocks{
		users:      &mockUserRepo{},
		rooms:      &mockRoomRepo{},
		printers:   &mockPrinterRepo{},
		items:      &mockItemRepo{},
		categories: &mockCategoryRepo{},
		orders:     &mockOrderRepo{},
	}
	h := handlers.NewHandler(
		service.NewUserService(m.users),
		m.rooms, m.printers, m.items, m.categories, m.orders,
		logger, cfg,
	)
	return h.Router, cfg, m
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
