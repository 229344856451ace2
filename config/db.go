package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the cart database. Carts are per-shopper session state, so a
// local sqlite file is enough; CART_DB overrides the path (":memory:" in tests).
func NewDB() (*gorm.DB, error) {
	path := os.Getenv("CART_DB")
	if path == "" {
		path = "catmanor.db"
	}

	logMode := logger.Silent
	if os.Getenv("GORM_LOG") == "on" {
		logMode = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
