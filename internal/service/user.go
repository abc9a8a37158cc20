// Package service содержит бизнес-логику поверх репозиториев.
package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"VenuePOS/internal/model"
	"VenuePOS/internal/repo"
)

var (
	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken — логин уже занят.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidRole — роль не входит в список известных.
	ErrInvalidRole = errors.New("invalid role")
)

// UserService отвечает за регистрацию и аутентификацию пользователей.
type UserService struct {
	users repo.UserRepository
}

// NewUserService создаёт сервис поверх репозитория пользователей.
func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// Login проверяет учётные данные и возвращает пользователя.
// Хеш пароля наружу не отдаётся (json:"-" на модели).
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CreateUser регистрирует нового пользователя с хешированием пароля.
func (s *UserService) CreateUser(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, &model.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	})
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UpdateRole меняет роль существующего пользователя.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete удаляет пользователя по id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
