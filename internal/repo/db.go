package repo

import (
	"DarkScope/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД и выполняет автомиграции.
// Пустой DSN — локальный файл SQLite (modernc, без cgo); иначе Postgres.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn == "" {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "darkscope.sqlite"}
	} else {
		dial = postgres.Open(dsn)
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, err
	}
	return db, nil
}
