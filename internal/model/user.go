package model

import (
	"time"
)

// User 账户模型。xid 在创建时由内部 id 派生，作为对外展示的标识，之后不再变化。
type User struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	XID             string    `json:"xid" gorm:"column:xid;type:varchar(64);not null"`
	Username        string    `json:"username" gorm:"type:varchar(64);not null"`
	Email           string    `json:"email" gorm:"type:varchar(255);uniqueIndex:ux_users_email;not null"`
	PasswordHash    string    `json:"-" gorm:"type:varchar(255);not null"`
	WalletAddress   string    `json:"walletAddress" gorm:"type:varchar(128)"`
	ProfileImageURL *string   `json:"profileImageUrl" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"not null"`
}

func (User) TableName() string { return "users" }

// CreateUserDTO 创建入参；密码入库前做 bcrypt 哈希。
type CreateUserDTO struct {
	Username        string  `json:"username" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	WalletAddress   string  `json:"walletAddress" binding:"required"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// UpdateUserDTO 部分更新入参：nil 字段保持原值（merge-on-non-null）。
type UpdateUserDTO struct {
	Username        *string `json:"username"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Password        *string `json:"password" binding:"omitempty,min=6"`
	WalletAddress   *string `json:"walletAddress"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
