package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pulse-Breakout/Backend/internal/identity"
	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/internal/repository"
)

type CommunityService interface {
	List(ctx context.Context) ([]*model.Community, error)
	GetByID(ctx context.Context, id string) (*model.Community, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*model.Community, error)
	Create(ctx context.Context, dto model.CreateCommunityDTO) (*model.Community, error)
	Update(ctx context.Context, id string, dto model.UpdateCommunityDTO) (*model.Community, error)
	Delete(ctx context.Context, id string) error
	TouchLastMessageTime(ctx context.Context, id string) error
}

type communityService struct {
	repo     repository.CommunityRepository
	resolver identity.Resolver
}

func NewCommunityService(repo repository.CommunityRepository, resolver identity.Resolver) CommunityService {
	return &communityService{repo: repo, resolver: resolver}
}

func (s *communityService) List(ctx context.Context) ([]*model.Community, error) {
	return s.repo.FindAll(ctx)
}

func (s *communityService) GetByID(ctx context.Context, id string) (*model.Community, error) {
	cm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get community: %w", err)
	}
	if cm == nil {
		return nil, ErrCommunityNotFound
	}
	return cm, nil
}

func (s *communityService) ListByCreator(ctx context.Context, creatorID string) ([]*model.Community, error) {
	return s.repo.FindByCreator(ctx, creatorID)
}

// Create 创建人必须能被解析成已注册身份，解析失败直接拒绝写入。
// bountyAmount 缺省补零，其余可选字段原样透传（保持 null）。
func (s *communityService) Create(ctx context.Context, dto model.CreateCommunityDTO) (*model.Community, error) {
	p, err := s.resolver.Resolve(ctx, dto.CreatorID)
	if err != nil {
		return nil, err
	}

	bounty := decimal.Zero
	if dto.BountyAmount != nil {
		bounty = *dto.BountyAmount
	}

	cm := &model.Community{
		ID:                uuid.New().String(),
		Name:              dto.Name,
		Description:       dto.Description,
		CreatorID:         p.ID,
		CreatorXID:        p.XID,
		ContractAddress:   dto.ContractAddress,
		BountyAmount:      bounty,
		TimeLimit:         dto.TimeLimit,
		BaseFeePercentage: dto.BaseFeePercentage,
		WalletAddress:     dto.WalletAddress,
		ImageURL:          dto.ImageURL,
		CreatedAt:         time.Now(),
	}
	if err := s.repo.Create(ctx, cm); err != nil {
		return nil, fmt.Errorf("create community: %w", err)
	}
	return cm, nil
}

// Update COALESCE 式合并：出现的字段覆盖，缺席的字段保留。
func (s *communityService) Update(ctx context.Context, id string, dto model.UpdateCommunityDTO) (*model.Community, error) {
	patch := map[string]interface{}{}
	if dto.Name != nil {
		patch["name"] = *dto.Name
	}
	if dto.Description != nil {
		patch["description"] = *dto.Description
	}
	if dto.ContractAddress != nil {
		patch["contract_address"] = *dto.ContractAddress
	}
	if dto.BountyAmount != nil {
		patch["bounty_amount"] = *dto.BountyAmount
	}
	if dto.TimeLimit != nil {
		patch["time_limit"] = *dto.TimeLimit
	}
	if dto.BaseFeePercentage != nil {
		patch["base_fee_percentage"] = *dto.BaseFeePercentage
	}
	if dto.WalletAddress != nil {
		patch["wallet_address"] = *dto.WalletAddress
	}
	if dto.ImageURL != nil {
		patch["image_url"] = *dto.ImageURL
	}

	// 空补丁没有可写内容，等价于读当前值
	if len(patch) == 0 {
		return s.GetByID(ctx, id)
	}

	rows, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update community: %w", err)
	}
	if rows == 0 {
		return nil, ErrCommunityNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *communityService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete community: %w", err)
	}
	if rows == 0 {
		return ErrCommunityNotFound
	}
	return nil
}

// TouchLastMessageTime 由内容服务在成功写入消息后调用。
func (s *communityService) TouchLastMessageTime(ctx context.Context, id string) error {
	rows, err := s.repo.TouchLastMessageTime(ctx, id, time.Now())
	if err != nil {
		return fmt.Errorf("touch last message time: %w", err)
	}
	if rows == 0 {
		return ErrCommunityNotFound
	}
	return nil
}
