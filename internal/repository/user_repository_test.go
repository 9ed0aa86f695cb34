package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_FindMissingIsNilNotError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := repo.FindByID(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seeded := seedUser(t, db, uuid.New().String(), "a@x.com")

	got, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, seeded.Email, got.Email)
	assert.Equal(t, seeded.XID, got.XID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, seeded.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmailTranslated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, uuid.New().String(), "dup@x.com")
	dupe := seedUserModel(uuid.New().String(), "dup@x.com")
	err := repo.Create(ctx, dupe)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUserRepository_UpdateMergesOnlyPatchFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, uuid.New().String(), "m@x.com")

	rows, err := repo.Update(ctx, u.ID, map[string]interface{}{"username": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Username)
	assert.Equal(t, "m@x.com", got.Email)
	assert.Equal(t, u.WalletAddress, got.WalletAddress)
}

func TestUserRepository_UpdateMissingAffectsZeroRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	rows, err := repo.Update(context.Background(), uuid.New().String(), map[string]interface{}{"username": "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestUserRepository_DeleteReportsRowsAffected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, uuid.New().String(), "d@x.com")

	rows, err := repo.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
