package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/model"
)

type CommunityRepository interface {
	FindAll(ctx context.Context) ([]*model.Community, error)
	FindByID(ctx context.Context, id string) (*model.Community, error)
	FindByCreator(ctx context.Context, creatorID string) ([]*model.Community, error)
	Create(ctx context.Context, cm *model.Community) error
	Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// TouchLastMessageTime 把 last_message_time 推进到 now；返回影响行数
	TouchLastMessageTime(ctx context.Context, id string, now time.Time) (int64, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository { return &communityRepository{db: db} }

func (r *communityRepository) FindAll(ctx context.Context) ([]*model.Community, error) {
	var res []*model.Community
	err := r.db.WithContext(ctx).Find(&res).Error
	return res, err
}

func (r *communityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	var cm model.Community
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cm).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *communityRepository) FindByCreator(ctx context.Context, creatorID string) ([]*model.Community, error) {
	var res []*model.Community
	err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Find(&res).Error
	return res, err
}

func (r *communityRepository) Create(ctx context.Context, cm *model.Community) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

func (r *communityRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Community{}).Where("id = ?", id).Updates(patch)
	return res.RowsAffected, res.Error
}

func (r *communityRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Community{})
	return res.RowsAffected, res.Error
}

func (r *communityRepository) TouchLastMessageTime(ctx context.Context, id string, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Community{}).
		Where("id = ?", id).
		Update("last_message_time", now)
	return res.RowsAffected, res.Error
}
