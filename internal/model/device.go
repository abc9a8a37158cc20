package model

// Room — помещение/зал заведения. Вместе с Printer образует группу «устройств»
// (так их группирует админка: одна витрина, две коллекции).
type Room struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
}

// Printer — чековый принтер, привязанный к точке обслуживания.
type Printer struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `json:"location"`
	IPAddr   string `json:"ip_address"`
}
