package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Pulse-Breakout/Backend/internal/repository"
)

var (
	// ErrMalformedIdentity 输入不是合法的内部 id 形态（uuid 字符串）
	ErrMalformedIdentity = errors.New("malformed identity")
	// ErrIdentityNotFound id 形态合法但没有对应的用户
	ErrIdentityNotFound = errors.New("identity not found")
)

// Principal 一次解析得到的不可变身份三元组：内部 id、对外 xid、钱包地址。
// 写路径统一经这里换取身份，不再在各服务里散落地解析字符串。
type Principal struct {
	ID     string `json:"id"`
	XID    string `json:"xid"`
	Wallet string `json:"wallet"`
}

// Resolver 只读解析，可被任意并发重复调用。
type Resolver interface {
	Resolve(ctx context.Context, principal string) (Principal, error)
	// Invalidate 在用户资料变更或删除后清掉缓存条目
	Invalidate(ctx context.Context, userID string)
}

type resolver struct {
	users repository.UserRepository
	cache *redis.Client // 可为 nil：直接落库查询
	ttl   time.Duration
}

func NewResolver(users repository.UserRepository, cache *redis.Client, ttl time.Duration) Resolver {
	return &resolver{users: users, cache: cache, ttl: ttl}
}

func cacheKey(userID string) string { return fmt.Sprintf("identity:%s", userID) }

func (r *resolver) Resolve(ctx context.Context, principal string) (Principal, error) {
	uid, err := uuid.Parse(principal)
	if err != nil {
		return Principal{}, ErrMalformedIdentity
	}
	id := uid.String()

	if r.cache != nil && r.ttl > 0 {
		if data, err := r.cache.Get(ctx, cacheKey(id)).Bytes(); err == nil {
			var p Principal
			if uErr := json.Unmarshal(data, &p); uErr == nil {
				return p, nil
			}
		}
	}

	u, err := r.users.FindByID(ctx, id)
	if err != nil {
		return Principal{}, fmt.Errorf("resolve identity: %w", err)
	}
	if u == nil {
		return Principal{}, ErrIdentityNotFound
	}

	p := Principal{ID: u.ID, XID: u.XID, Wallet: u.WalletAddress}
	if r.cache != nil && r.ttl > 0 {
		if payload, err := json.Marshal(p); err == nil {
			_ = r.cache.Set(ctx, cacheKey(id), payload, r.ttl).Err()
		}
	}
	return p, nil
}

func (r *resolver) Invalidate(ctx context.Context, userID string) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Del(ctx, cacheKey(userID)).Err()
}
