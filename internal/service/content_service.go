package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Pulse-Breakout/Backend/internal/identity"
	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/internal/repository"
	"github.com/Pulse-Breakout/Backend/pkg/logger"
)

type ContentService interface {
	List(ctx context.Context) ([]*model.Content, error)
	GetByID(ctx context.Context, id string) (*model.Content, error)
	ListByCommunity(ctx context.Context, communityID string) ([]*model.Content, error)
	Create(ctx context.Context, dto model.CreateContentDTO) (*model.Content, error)
	Delete(ctx context.Context, id string) error
}

type contentService struct {
	repo        repository.ContentRepository
	communities CommunityService
	resolver    identity.Resolver
}

func NewContentService(repo repository.ContentRepository, communities CommunityService, resolver identity.Resolver) ContentService {
	return &contentService{repo: repo, communities: communities, resolver: resolver}
}

func (s *contentService) List(ctx context.Context) ([]*model.Content, error) {
	return s.repo.FindAll(ctx)
}

func (s *contentService) GetByID(ctx context.Context, id string) (*model.Content, error) {
	ct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	if ct == nil {
		return nil, ErrContentNotFound
	}
	return ct, nil
}

func (s *contentService) ListByCommunity(ctx context.Context, communityID string) ([]*model.Content, error) {
	return s.repo.FindByCommunity(ctx, communityID)
}

// Create 发送者身份经解析器回填，解析失败拒绝写入（与社区创建同一口径）。
// 社区存在性不做预检，悬空引用由外键约束在存储层拦下。
// 写入消息、推进社区活跃时间是两条独立语句：第二步失败只记日志，不回滚第一步。
func (s *contentService) Create(ctx context.Context, dto model.CreateContentDTO) (*model.Content, error) {
	if dto.SenderID == "" || dto.CommunityID == "" {
		return nil, ErrValidation
	}

	p, err := s.resolver.Resolve(ctx, dto.SenderID)
	if err != nil {
		return nil, err
	}

	ct := &model.Content{
		ID:           uuid.New().String(),
		Content:      dto.Content,
		SenderID:     p.ID,
		SenderXID:    p.XID,
		SenderWallet: p.Wallet,
		CommunityID:  dto.CommunityID,
		ImageURL:     dto.ImageURL,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, ct); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	if err := s.communities.TouchLastMessageTime(ctx, dto.CommunityID); err != nil {
		logger.Warn("content persisted but community touch failed",
			zap.String("content_id", ct.ID),
			zap.String("community_id", dto.CommunityID),
			zap.Error(err),
		)
	}
	return ct, nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if rows == 0 {
		return ErrContentNotFound
	}
	return nil
}
