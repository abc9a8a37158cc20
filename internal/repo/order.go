package repo

import (
	"context"

	"gorm.io/gorm"

	"VenuePOS/internal/model"
)

// OrderRepository определяет контракт доступа к Order и строкам заказа.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// ListItems возвращает строки заказа; для несуществующего заказа — ошибка.
	ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
}

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository создаёт реализацию репозитория для Order.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	// существование заказа проверяем отдельно: пустой заказ — не 404
	var order model.Order
	if err := r.db.WithContext(ctx).Select("id").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	var items []model.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create пишет заказ вместе со строками (gorm каскадно создаёт ассоциации).
func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
