package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Pulse-Breakout/Backend/config"
	"github.com/Pulse-Breakout/Backend/internal/model"
)

// InitDB 打开 Postgres 连接池并迁移四张表。连接池显式注入各仓储，不做包级全局。
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	switch cfg.Database.LogLevel {
	case "silent":
		level = gormlogger.Silent
	case "info":
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Content{},
		&model.Depositor{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
