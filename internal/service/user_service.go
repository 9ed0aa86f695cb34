package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/identity"
	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/internal/repository"
)

type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, dto model.CreateUserDTO) (*model.User, error)
	Update(ctx context.Context, id string, dto model.UpdateUserDTO) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo     repository.UserRepository
	resolver identity.Resolver
}

func NewUserService(repo repository.UserRepository, resolver identity.Resolver) UserService {
	return &userService{repo: repo, resolver: resolver}
}

func (s *userService) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Create 先做一次存在性预读给出友好冲突，真正的唯一性由 email 唯一索引兜底：
// 并发窗口里撞上索引的插入同样折算成 ErrEmailExists。
func (s *userService) Create(ctx context.Context, dto model.CreateUserDTO) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, dto.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	id := uuid.New().String()
	u := &model.User{
		ID:       id,
		XID:      id, // xid 是内部 id 的确定性派生，创建时固定
		Username: dto.Username,
		Email:    dto.Email,
		PasswordHash:    string(hash),
		WalletAddress:   dto.WalletAddress,
		ProfileImageURL: dto.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Update merge-on-non-null：只覆盖请求里出现的字段。单条条件写，
// 影响行数为 0 即目标不存在，不做 check-then-write。
func (s *userService) Update(ctx context.Context, id string, dto model.UpdateUserDTO) (*model.User, error) {
	patch := map[string]interface{}{}
	if dto.Username != nil {
		patch["username"] = *dto.Username
	}
	if dto.Email != nil {
		patch["email"] = *dto.Email
	}
	if dto.WalletAddress != nil {
		patch["wallet_address"] = *dto.WalletAddress
	}
	if dto.ProfileImageURL != nil {
		patch["profile_image_url"] = *dto.ProfileImageURL
	}
	if dto.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch["password_hash"] = string(hash)
	}

	rows, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}

	if s.resolver != nil {
		s.resolver.Invalidate(ctx, id)
	}
	return s.GetByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	if s.resolver != nil {
		s.resolver.Invalidate(ctx, id)
	}
	return nil
}
