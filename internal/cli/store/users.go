package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"VenuePOS/internal/cli/api"
	"VenuePOS/internal/model"
)

// UserStore владеет коллекцией учётных записей для экрана user-management.
// Не путать с session.Store: здесь список чужих пользователей, не сессия.
type UserStore struct {
	mu    sync.Mutex
	api   *api.Client
	log   *zap.SugaredLogger
	users []model.User
}

// NewUserStore создаёт store с пустой коллекцией.
func NewUserStore(client *api.Client, log *zap.SugaredLogger) *UserStore {
	return &UserStore{api: client, log: log}
}

// Users возвращает копию текущей коллекции.
func (s *UserStore) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// FetchUsers целиком заменяет локальную коллекцию ответом сервера.
func (s *UserStore) FetchUsers(ctx context.Context) error {
	var users []model.User
	if err := s.api.GetJSON(ctx, "/users", &users); err != nil {
		s.log.Errorw("Failed to fetch users", "error", err)
		return err
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// newUser — форма создания: пароль уходит на сервер открытым текстом поверх
// TLS и хешируется там, обратно не возвращается.
type newUser struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// SaveUser создаёт учётную запись и добавляет её в коллекцию с серверным ID.
func (s *UserStore) SaveUser(ctx context.Context, user *model.User, password string) error {
	var created struct {
		ID int64 `json:"id"`
	}
	payload := newUser{Username: user.Username, Password: password, Role: user.Role}
	if err := s.api.PostJSON(ctx, "/users", payload, &created); err != nil {
		s.log.Errorw("Failed to save user", "error", err)
		return err
	}
	user.ID = created.ID
	s.mu.Lock()
	s.users = append(s.users, *user)
	s.mu.Unlock()
	return nil
}

// UpdateUser требует установленный ID; локальная запись заменяется целиком.
func (s *UserStore) UpdateUser(ctx context.Context, user *model.User) error {
	if user.ID == 0 {
		return fmt.Errorf("user: %w", ErrMissingID)
	}
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/users/%d", user.ID), user, nil); err != nil {
		s.log.Errorw("Failed to update user", "id", user.ID, "error", err)
		return err
	}
	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteUser удаляет запись с указанным ID.
func (s *UserStore) DeleteUser(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/users/%d", id)); err != nil {
		s.log.Errorw("Failed to delete user", "id", id, "error", err)
		return err
	}
	s.mu.Lock()
	filtered := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	s.users = filtered
	s.mu.Unlock()
	return nil
}
