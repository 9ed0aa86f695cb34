package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Depositor 用户向社区的入金记录，纯存储模型，没有独立的业务流程。
type Depositor struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string          `json:"userId" gorm:"type:varchar(36);index:idx_depositors_user;not null"`
	CommunityID   string          `json:"communityId" gorm:"type:varchar(36);index:idx_depositors_community;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,8);not null"`
	WalletAddress *string         `json:"walletAddress" gorm:"type:varchar(128)"`
	DepositedAt   time.Time       `json:"depositedAt" gorm:"not null"`
}

func (Depositor) TableName() string { return "depositors" }

// CreateDepositorDTO 入金入参。
type CreateDepositorDTO struct {
	UserID        string          `json:"userId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	WalletAddress *string         `json:"walletAddress"`
}
