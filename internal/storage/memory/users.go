// Package memory реализует хранилища пользователей и товаров в памяти процесса.
//
// Записи только добавляются, обновления и удаления отсутствуют, поэтому
// инварианты уникальности проверяются один раз — при создании. Каждое
// хранилище защищено одним мьютексом; перезапуск процесса стирает все данные.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Ошибки хранилища пользователей.
var (
	ErrUserExists   = errors.New("username already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserStore хранит пользователей в порядке регистрации.
type UserStore struct {
	mu    sync.Mutex
	users []models.User
}

// NewUserStore создает пустое хранилище пользователей.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Register сохраняет нового пользователя и возвращает его с присвоенным ID.
//
// Имя проверяется на уникальность без учета регистра, ID — порядковый номер.
func (s *UserStore) Register(ctx context.Context, username, passwordHash string) (models.User, error) {
	const op = "storage.memory.Register"
	select {
	case <-ctx.Done():
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
	}
	user := models.User{
		ID:           len(s.users) + 1,
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.users = append(s.users, user)
	return user, nil
}

// FindByUsername возвращает первого пользователя с совпадающим именем
// (без учета регистра).
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.memory.FindByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}
