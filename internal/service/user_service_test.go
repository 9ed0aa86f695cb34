package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_CreateAssignsServerFieldsAndEchoesInput(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	u := f.createUser(t, "a@x.com")
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, u.ID, u.XID) // xid 是内部 id 的确定性派生
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.UpdatedAt.IsZero())

	got, err := f.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, u.Username, got.Username)
	assert.Equal(t, "0xwallet", got.WalletAddress)
}

func TestUserService_PasswordStoredHashed(t *testing.T) {
	f := setup(t)
	u := f.createUser(t, "h@x.com")

	got, err := f.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret01", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret01")))
}

func TestUserService_DuplicateEmailConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.createUser(t, "dup@x.com")
	_, err := f.users.Create(ctx, newCreateUserDTO("dup@x.com"))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserService_UpdateMergeLaw(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.createUser(t, "m@x.com")

	updated, err := f.users.Update(ctx, u.ID, newUpdateUsername("renamed"))
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	// 未出现在补丁里的字段保持原值
	assert.Equal(t, "m@x.com", updated.Email)
	assert.Equal(t, u.WalletAddress, updated.WalletAddress)
	assert.Equal(t, u.XID, updated.XID)
}

func TestUserService_UpdateMissingUser(t *testing.T) {
	f := setup(t)
	_, err := f.users.Update(context.Background(), "00000000-0000-0000-0000-000000000000", newUpdateUsername("x"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateToTakenEmailConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.createUser(t, "taken@x.com")
	u := f.createUser(t, "mine@x.com")

	taken := "taken@x.com"
	_, err := f.users.Update(ctx, u.ID, updateUserEmail(taken))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserService_DeleteSecondCallNotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.createUser(t, "d@x.com")

	require.NoError(t, f.users.Delete(ctx, u.ID))
	assert.ErrorIs(t, f.users.Delete(ctx, u.ID), ErrUserNotFound)
}

func TestUserService_GetByEmail(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	u := f.createUser(t, "e@x.com")

	got, err := f.users.GetByEmail(ctx, "e@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.users.GetByEmail(ctx, "nope@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
