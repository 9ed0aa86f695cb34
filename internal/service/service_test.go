package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/identity"
	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/internal/repository"
)

type fixture struct {
	db         *gorm.DB
	users      UserService
	comms      CommunityService
	contents   ContentService
	depositors DepositorService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Community{}, &model.Content{}, &model.Depositor{}))

	userRepo := repository.NewUserRepository(db)
	commRepo := repository.NewCommunityRepository(db)
	contentRepo := repository.NewContentRepository(db)
	depositorRepo := repository.NewDepositorRepository(db)

	resolver := identity.NewResolver(userRepo, nil, 0)
	comms := NewCommunityService(commRepo, resolver)
	return &fixture{
		db:         db,
		users:      NewUserService(userRepo, resolver),
		comms:      comms,
		contents:   NewContentService(contentRepo, comms, resolver),
		depositors: NewDepositorService(depositorRepo),
	}
}

func (f *fixture) createUser(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), model.CreateUserDTO{
		Username:      "user-" + email,
		Email:         email,
		Password:      "secret01",
		WalletAddress: "0xwallet",
	})
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }

func newCreateUserDTO(email string) model.CreateUserDTO {
	return model.CreateUserDTO{
		Username:      "user-" + email,
		Email:         email,
		Password:      "secret01",
		WalletAddress: "0xwallet",
	}
}

func newUpdateUsername(name string) model.UpdateUserDTO {
	return model.UpdateUserDTO{Username: &name}
}

func updateUserEmail(email string) model.UpdateUserDTO {
	return model.UpdateUserDTO{Email: &email}
}
