package model

// Role — закрытый перечень ролей пользователя.
type Role string

const (
	RoleCustomerService Role = "Customer Service"
	RoleManager         Role = "Manager"
	RoleStaff           Role = "staff"
	RoleAdmin           Role = "admin"
	RoleUser            Role = "user"
)

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomerService, RoleManager, RoleStaff, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User — учётная запись пользователя админки.
// Password хранит bcrypt-хеш и никогда не сериализуется в ответах API.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(32);not null;default:user" json:"role"`
}

// IsZero reports whether the record carries no session at all.
// Запись с ID=0 и пустым username неотличима от «нет сессии».
func (u User) IsZero() bool {
	return u.ID == 0 && u.Username == "" && u.Role == ""
}
