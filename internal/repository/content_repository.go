package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/model"
)

type ContentRepository interface {
	FindAll(ctx context.Context) ([]*model.Content, error)
	FindByID(ctx context.Context, id string) (*model.Content, error)
	// FindByCommunity 按创建时间倒序
	FindByCommunity(ctx context.Context, communityID string) ([]*model.Content, error)
	Create(ctx context.Context, ct *model.Content) error
	Delete(ctx context.Context, id string) (int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository { return &contentRepository{db: db} }

func (r *contentRepository) FindAll(ctx context.Context) ([]*model.Content, error) {
	var res []*model.Content
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&res).Error
	return res, err
}

func (r *contentRepository) FindByID(ctx context.Context, id string) (*model.Content, error) {
	var ct model.Content
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ct).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *contentRepository) FindByCommunity(ctx context.Context, communityID string) ([]*model.Content, error) {
	var res []*model.Content
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

func (r *contentRepository) Create(ctx context.Context, ct *model.Content) error {
	return r.db.WithContext(ctx).Create(ct).Error
}

func (r *contentRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Content{})
	return res.RowsAffected, res.Error
}
