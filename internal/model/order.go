package model

import "time"

// Статусы заказа.
const (
	OrderStatusOpen   = "open"
	OrderStatusPaid   = "paid"
	OrderStatusClosed = "closed"
)

// Order — заказ; позиции читаются отдельным запросом /orders/{id}/items,
// поэтому Items в списочных ответах не заполняется.
type Order struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	RoomID int64  `gorm:"index" json:"room_id"`
	Status string `gorm:"not null;default:open" json:"status"`
	Total  float64 `json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderItem — строка заказа: ссылка на Item плюс количество и цена на момент заказа.
type OrderItem struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	OrderID  int64   `gorm:"not null;index" json:"order_id"`
	ItemID   int64   `gorm:"not null;index" json:"item_id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}
