package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Pulse-Breakout/Backend/internal/model"
	"github.com/Pulse-Breakout/Backend/internal/repository"
)

// DepositorService 入金记录的薄封装，约束交给外键。
type DepositorService interface {
	Deposit(ctx context.Context, communityID string, dto model.CreateDepositorDTO) (*model.Depositor, error)
	ListByCommunity(ctx context.Context, communityID string) ([]*model.Depositor, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Depositor, error)
}

type depositorService struct {
	repo repository.DepositorRepository
}

func NewDepositorService(repo repository.DepositorRepository) DepositorService {
	return &depositorService{repo: repo}
}

func (s *depositorService) Deposit(ctx context.Context, communityID string, dto model.CreateDepositorDTO) (*model.Depositor, error) {
	if dto.UserID == "" || communityID == "" {
		return nil, ErrValidation
	}
	d := &model.Depositor{
		ID:            uuid.New().String(),
		UserID:        dto.UserID,
		CommunityID:   communityID,
		Amount:        dto.Amount,
		WalletAddress: dto.WalletAddress,
		DepositedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create depositor: %w", err)
	}
	return d, nil
}

func (s *depositorService) ListByCommunity(ctx context.Context, communityID string) ([]*model.Depositor, error) {
	return s.repo.FindByCommunity(ctx, communityID)
}

func (s *depositorService) ListByUser(ctx context.Context, userID string) ([]*model.Depositor, error) {
	return s.repo.FindByUser(ctx, userID)
}
