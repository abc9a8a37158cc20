package repo

import "VenuePOS/internal/model"

// UserRecordStore — абстракция персистентного хранения записи текущего
// пользователя (аналог localStorage с фиксированным ключом).
type UserRecordStore interface {
	// Save сериализует и сохраняет запись пользователя.
	Save(u model.User) error

	// Load возвращает сохранённую запись; ошибка, если записи нет.
	Load() (model.User, error)

	// Clear удаляет сохранённую запись. Отсутствие записи не считается ошибкой.
	Clear() error
}
