package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Community 社区模型。creator 两个字段都在创建时由身份解析器回填，不信任请求体。
type Community struct {
	ID                string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name              string          `json:"name" gorm:"type:varchar(128);not null"`
	Description       *string         `json:"description" gorm:"type:text"`
	CreatorID         string          `json:"creatorId" gorm:"type:varchar(36);index:idx_communities_creator;not null"`
	CreatorXID        string          `json:"creatorXid" gorm:"column:creator_xid;type:varchar(64);not null"`
	ContractAddress   *string         `json:"contractAddress" gorm:"type:varchar(128)"`
	BountyAmount      decimal.Decimal `json:"bountyAmount" gorm:"type:decimal(20,8);not null"`
	TimeLimit         *int            `json:"timeLimit"`
	BaseFeePercentage *float32        `json:"baseFeePercentage"`
	WalletAddress     *string         `json:"walletAddress" gorm:"type:varchar(128)"`
	ImageURL          *string         `json:"imageURL" gorm:"column:image_url;type:text"`
	CreatedAt         time.Time       `json:"createdAt" gorm:"not null"`
	// 每次有内容写入社区时推进；可为空表示还没有任何消息
	LastMessageTime *time.Time `json:"lastMessageTime"`
}

func (Community) TableName() string { return "communities" }

// CreateCommunityDTO 创建入参。bountyAmount 缺省补零，其余可选字段保持 null。
type CreateCommunityDTO struct {
	Name              string           `json:"name" binding:"required"`
	Description       *string          `json:"description"`
	ContractAddress   *string          `json:"contractAddress"`
	BountyAmount      *decimal.Decimal `json:"bountyAmount"`
	TimeLimit         *int             `json:"timeLimit"`
	BaseFeePercentage *float32         `json:"baseFeePercentage"`
	WalletAddress     *string          `json:"walletAddress"`
	ImageURL          *string          `json:"imageURL"`
	// 发起人主体标识（内部 id 的字符串形式），由网关/前端提供
	CreatorID string `json:"creatorId" binding:"required"`
}

// UpdateCommunityDTO COALESCE 式部分更新入参。
type UpdateCommunityDTO struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	ContractAddress   *string          `json:"contractAddress"`
	BountyAmount      *decimal.Decimal `json:"bountyAmount"`
	TimeLimit         *int             `json:"timeLimit"`
	BaseFeePercentage *float32         `json:"baseFeePercentage"`
	WalletAddress     *string          `json:"walletAddress"`
	ImageURL          *string          `json:"imageURL"`
}
