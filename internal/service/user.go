package service

import (
	"DarkScope/internal/model"
	"DarkScope/internal/repo"
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken — попытка регистрации на занятый email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — общая ошибка входа без уточнения причины.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// registerInput — входные данные регистрации для валидатора.
type registerInput struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=8"`
}

// UserService реализует регистрацию и вход.
type UserService struct {
	repo     repo.UserRepository
	validate *validator.Validate
}

// NewUserService конструктор сервиса пользователей.
func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r, validate: validator.New()}
}

// Register валидирует входные данные, хеширует пароль и создаёт пользователя.
func (s *UserService) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	in := registerInput{Email: email, Username: username, Password: password}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := checkPasswordStrength(password); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateUser(ctx, &model.User{Email: email, Username: username, Password: string(hash)})
}

// Login возвращает пользователя при совпадении пароля.
// "Нет такого аккаунта" и "неверный пароль" намеренно неразличимы.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// RequestPasswordReset имитирует отправку письма для сброса пароля.
// Ответ одинаков для существующих и несуществующих аккаунтов.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("validation: %w", err)
	}
	// Реальная отправка писем не подключена; наличие аккаунта не раскрываем.
	_, _ = s.repo.GetUserByEmail(ctx, email)
	return "If an account exists for this email, a reset link has been sent", nil
}

// checkPasswordStrength — требования к паролю сверх min=8: верхний/нижний регистр и цифра.
func checkPasswordStrength(password string) error {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return errors.New("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return errors.New("password must contain at least one number")
	}
	return nil
}
