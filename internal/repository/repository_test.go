package repository

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Community{}, &model.Content{}, &model.Depositor{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUserModel(id, email string) *model.User {
	now := time.Now()
	return &model.User{
		ID: id, XID: id, Username: "u-" + id[:4], Email: email,
		PasswordHash: "x", WalletAddress: "0x" + id[:4],
		CreatedAt: now, UpdatedAt: now,
	}
}

func seedUser(t *testing.T, db *gorm.DB, id, email string) *model.User {
	t.Helper()
	now := time.Now()
	u := &model.User{
		ID: id, XID: id, Username: "u-" + id[:4], Email: email,
		PasswordHash: "x", WalletAddress: "0x" + id[:4],
		CreatedAt: now, UpdatedAt: now,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
