package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"VenuePOS/internal/model"
)

// Имена файлов под каталогом конфигурации — фиксированные «ключи» хранилища.
const (
	tokenFile = "auth_token"
	userFile  = "current_user"
)

// resolve возвращает путь к файлу хранилища и создаёт родительский каталог.
// Пустой override означает <user config dir>/VenuePOS/<name>.
func resolve(override, name string) (string, error) {
	if override != "" {
		if err := os.MkdirAll(filepath.Dir(override), 0o700); err != nil {
			return "", err
		}
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "VenuePOS")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(p, name), nil
}

// SessionFSStore — файловое хранилище auth-токена для клиента.
type SessionFSStore struct {
	// Path переопределяет расположение файла токена (флаг/env TOKEN_FILE);
	// пустое значение — файл в каталоге конфигурации приложения.
	Path string
}

// Save сохраняет auth‑токен в файл.
func (s SessionFSStore) Save(token string) error {
	p, err := resolve(s.Path, tokenFile)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (s SessionFSStore) Load() (string, error) {
	p, err := resolve(s.Path, tokenFile)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), nil
}

// Clear удаляет файл токена.
func (s SessionFSStore) Clear() error {
	p, err := resolve(s.Path, tokenFile)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// UserFSStore — файловое хранилище записи текущего пользователя (JSON).
type UserFSStore struct {
	// Path переопределяет расположение записи (флаг/env SESSION_FILE).
	Path string
}

// Save сериализует запись пользователя в JSON и сохраняет в файл.
func (s UserFSStore) Save(u model.User) error {
	p, err := resolve(s.Path, userFile)
	if err != nil {
		return err
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Load читает сохранённую запись пользователя.
func (s UserFSStore) Load() (model.User, error) {
	var u model.User
	p, err := resolve(s.Path, userFile)
	if err != nil {
		return u, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return u, err
	}
	if len(b) == 0 {
		return u, errors.New("empty session record")
	}
	if err := json.Unmarshal(b, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Clear удаляет сохранённую запись пользователя.
func (s UserFSStore) Clear() error {
	p, err := resolve(s.Path, userFile)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
