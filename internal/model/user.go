package model

import "time"

// User — серверная модель учётной записи.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Username string `gorm:"not null"` // отображаемое имя, задаётся при регистрации
	Password string `gorm:"not null"` // bcrypt hash

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
