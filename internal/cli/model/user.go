package model

// User — локальная модель текущего пользователя дашборда.
// ID генерируется на клиенте из текущего времени и глобально НЕ уникален
// между сессиями — это известное ограничение локального демо, не схема идентичности.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
