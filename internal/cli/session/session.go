package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"VenuePOS/internal/cli/api"
	"VenuePOS/internal/cli/repo"
	"VenuePOS/internal/model"
)

// ErrInvalidRole возвращается при попытке присвоить роль вне закрытого перечня.
var ErrInvalidRole = errors.New("invalid role")

// Store держит не более одной записи аутентифицированного пользователя и
// отвечает на запросы о личности/роли. Запись зеркалируется в персистентное
// хранилище и переживает перезапуск клиента.
type Store struct {
	mu      sync.Mutex
	api     *api.Client
	users   repo.UserRecordStore
	tokens  repo.TokenStore
	log     *zap.SugaredLogger
	current model.User
}

// New создаёт session store. Восстановление записи с диска — отдельный Restore.
func New(client *api.Client, users repo.UserRecordStore, tokens repo.TokenStore, log *zap.SugaredLogger) *Store {
	return &Store{api: client, users: users, tokens: tokens, log: log}
}

// Restore загружает сохранённую запись пользователя и токен (если есть).
// Отсутствие записи не ошибка: клиент просто стартует без сессии.
func (s *Store) Restore() {
	u, err := s.users.Load()
	if err != nil {
		return
	}
	tok, _ := s.tokens.Load()
	s.mu.Lock()
	s.current = u
	s.api.Token = tok
	s.mu.Unlock()
}

// Login отправляет учётные данные как URL-encoded форму на /users/login.
// Любой статус, кроме 200, считается неудачей: сессия не создаётся и ничего
// не персистится. При успехе запись пользователя и auth cookie сохраняются.
func (s *Store) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var u model.User
	resp, err := s.api.PostForm(ctx, "/users/login", form, &u)
	if err != nil {
		s.log.Errorw("Failed to login", "username", username, "error", err)
		return err
	}
	// требуется ровно 200: другие 2xx не несут запись пользователя
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("login: unexpected status %d", resp.StatusCode)
		s.log.Errorw("Failed to login", "username", username, "error", err)
		return err
	}
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			if err := s.tokens.Save(c.Value); err != nil {
				s.log.Errorw("Failed to persist auth token", "error", err)
			}
			s.mu.Lock()
			s.api.Token = c.Value
			s.mu.Unlock()
			break
		}
	}
	return s.SetUser(u)
}

// SetUser заменяет текущую запись сессии и персистит её.
func (s *Store) SetUser(u model.User) error {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	if err := s.users.Save(u); err != nil {
		s.log.Errorw("Failed to persist session record", "error", err)
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// ClearUser удаляет персистентную запись и сбрасывает сессию.
func (s *Store) ClearUser() error {
	if err := s.users.Clear(); err != nil {
		return err
	}
	if err := s.tokens.Clear(); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = model.User{}
	s.api.Token = ""
	s.mu.Unlock()
	return nil
}

// UpdateUserRole меняет только поле роли текущей сессии. Без активной сессии —
// no-op. Роль ограничена закрытым перечнем.
func (s *Store) UpdateUserRole(role model.Role) error {
	if !model.ValidRole(role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.IsZero() {
		return nil
	}
	s.current.Role = role
	return nil
}

// UserID возвращает идентификатор текущего пользователя (0 без сессии).
func (s *Store) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.ID
}

// Username возвращает имя текущего пользователя.
func (s *Store) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Username
}

// Role возвращает роль текущего пользователя.
func (s *Store) Role() model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Role
}

// IsAuthenticated выводится из непустоты записи, а не из отдельного флага.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.current.IsZero()
}

// CurrentUser возвращает копию текущей записи.
func (s *Store) CurrentUser() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
