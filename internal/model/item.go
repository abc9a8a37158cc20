package model

// Item — позиция меню/прайса. Image хранит имя файла, присвоенное сервером
// при multipart-загрузке (пустая строка — без изображения).
type Item struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	CategoryID int64   `gorm:"index" json:"category_id"`

	// Связи
	Category *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`

	Image string `json:"image,omitempty"`
}

// Category — категория позиций. Изображение опционально, как и у Item.
type Category struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Image string `json:"image,omitempty"`
}
