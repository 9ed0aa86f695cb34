package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/internal/model"
)

// UserRepository 用户表的类型化 CRUD；未命中一律返回空结果而不是错误。
type UserRepository interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	// Update 条件更新：目标行不存在时影响行数为 0，不额外做存在性预读
	Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).Find(&res).Error
	return res, err
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (int64, error) {
	if len(patch) == 0 {
		patch = map[string]interface{}{}
	}
	patch["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(patch)
	return res.RowsAffected, res.Error
}

func (r *userRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	return res.RowsAffected, res.Error
}
