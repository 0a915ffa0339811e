package repo

import (
	"DarkScope/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к учётным записям для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его с заполненным ID.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail возвращает пользователя по email.
	// Если пользователь не найден — (nil, nil), чтобы вызывающий сам решал, ошибка это или нет.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт gorm-реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
