package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"VenuePOS/internal/cli/api"
	"VenuePOS/internal/model"
)

// OrderStore владеет коллекцией заказов. Строки заказа читаются отдельным
// запросом и в коллекции не кэшируются.
type OrderStore struct {
	mu     sync.Mutex
	api    *api.Client
	log    *zap.SugaredLogger
	orders []model.Order
}

// NewOrderStore создаёт store с пустой коллекцией.
func NewOrderStore(client *api.Client, log *zap.SugaredLogger) *OrderStore {
	return &OrderStore{api: client, log: log}
}

// Orders возвращает копию текущей коллекции заказов.
func (s *OrderStore) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// FetchOrders целиком заменяет локальную коллекцию ответом сервера.
func (s *OrderStore) FetchOrders(ctx context.Context) error {
	var orders []model.Order
	if err := s.api.GetJSON(ctx, "/orders", &orders); err != nil {
		s.log.Errorw("Failed to fetch orders", "error", err)
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// FetchOrderByID возвращает один заказ, не трогая коллекцию.
func (s *OrderStore) FetchOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/orders/%d", id), &order); err != nil {
		s.log.Errorw("Failed to fetch order", "id", id, "error", err)
		return nil, err
	}
	return &order, nil
}

// FetchItemsByOrderID читает строки заказа вложенным запросом.
func (s *OrderStore) FetchItemsByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/orders/%d/items", orderID), &items); err != nil {
		s.log.Errorw("Failed to fetch order items", "order_id", orderID, "error", err)
		return nil, err
	}
	return items, nil
}

// SaveOrder создаёт заказ и добавляет его в коллекцию с серверным ID.
func (s *OrderStore) SaveOrder(ctx context.Context, order *model.Order) error {
	var created struct {
		ID int64 `json:"id"`
	}
	if err := s.api.PostJSON(ctx, "/orders", order, &created); err != nil {
		s.log.Errorw("Failed to save order", "error", err)
		return err
	}
	order.ID = created.ID
	s.mu.Lock()
	s.orders = append(s.orders, *order)
	s.mu.Unlock()
	return nil
}

// UpdateOrder требует установленный ID; локальная запись заменяется целиком.
func (s *OrderStore) UpdateOrder(ctx context.Context, order *model.Order) error {
	if order.ID == 0 {
		return fmt.Errorf("order: %w", ErrMissingID)
	}
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/orders/%d", order.ID), order, nil); err != nil {
		s.log.Errorw("Failed to update order", "id", order.ID, "error", err)
		return err
	}
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = *order
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteOrder удаляет запись с указанным ID.
func (s *OrderStore) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/orders/%d", id)); err != nil {
		s.log.Errorw("Failed to delete order", "id", id, "error", err)
		return err
	}
	s.mu.Lock()
	filtered := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			filtered = append(filtered, o)
		}
	}
	s.orders = filtered
	s.mu.Unlock()
	return nil
}
