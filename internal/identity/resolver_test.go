package identity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/internal/repository"
)

func setupUsers(t *testing.T) (*gorm.DB, repository.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db, repository.NewUserRepository(db)
}

func createUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	id := uuid.New().String()
	now := time.Now()
	u := &model.User{
		ID: id, XID: id, Username: "alice", Email: id[:8] + "@x.com",
		PasswordHash: "h", WalletAddress: "0xabc",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestResolver_MalformedIdentity(t *testing.T) {
	_, users := setupUsers(t)
	r := NewResolver(users, nil, 0)

	_, err := r.Resolve(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrMalformedIdentity)
}

func TestResolver_IdentityNotFound(t *testing.T) {
	_, users := setupUsers(t)
	r := NewResolver(users, nil, 0)

	_, err := r.Resolve(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestResolver_ResolvesPrincipalTriple(t *testing.T) {
	db, users := setupUsers(t)
	u := createUser(t, db)
	r := NewResolver(users, nil, 0)

	p, err := r.Resolve(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, Principal{ID: u.ID, XID: u.XID, Wallet: u.WalletAddress}, p)
}

func TestResolver_CacheHitSkipsStore(t *testing.T) {
	db, users := setupUsers(t)
	u := createUser(t, db)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewResolver(users, client, 5*time.Minute)
	ctx := context.Background()

	first, err := r.Resolve(ctx, u.ID)
	require.NoError(t, err)

	// 删掉库里的行：命中缓存时仍能解析出来
	require.NoError(t, db.Delete(&model.User{}, "id = ?", u.ID).Error)

	cached, err := r.Resolve(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	// 失效后回源，用户已不存在
	r.Invalidate(ctx, u.ID)
	_, err = r.Resolve(ctx, u.ID)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}
