package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/model"
)

// DepositorRepository 只有存储层生命周期，没有业务逻辑。
type DepositorRepository interface {
	Create(ctx context.Context, d *model.Depositor) error
	FindByCommunity(ctx context.Context, communityID string) ([]*model.Depositor, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Depositor, error)
}

type depositorRepository struct {
	db *gorm.DB
}

func NewDepositorRepository(db *gorm.DB) DepositorRepository { return &depositorRepository{db: db} }

func (r *depositorRepository) Create(ctx context.Context, d *model.Depositor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *depositorRepository) FindByCommunity(ctx context.Context, communityID string) ([]*model.Depositor, error) {
	var res []*model.Depositor
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("deposited_at DESC").
		Find(&res).Error
	return res, err
}

func (r *depositorRepository) FindByUser(ctx context.Context, userID string) ([]*model.Depositor, error) {
	var res []*model.Depositor
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("deposited_at DESC").
		Find(&res).Error
	return res, err
}
