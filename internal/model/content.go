package model

import (
	"time"
)

// Content 社区内的一条消息。sender 三元组（内部 id / xid / 钱包地址）
// 全部在创建时由身份解析器回填。
type Content struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	SenderID     string    `json:"senderId" gorm:"type:varchar(36);not null"`
	SenderXID    string    `json:"senderXid" gorm:"column:sender_xid;type:varchar(64);not null"`
	SenderWallet string    `json:"senderWallet" gorm:"type:varchar(128)"`
	CommunityID  string    `json:"communityId" gorm:"type:varchar(36);index:idx_content_community;not null"`
	ImageURL     *string   `json:"imageURL" gorm:"column:image_url;type:text"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index:idx_content_created;not null"`
}

func (Content) TableName() string { return "content" }

// CreateContentDTO 创建入参。senderId 是发送者的主体标识，服务端据此解析并回填。
type CreateContentDTO struct {
	Content     string  `json:"content" binding:"required"`
	SenderID    string  `json:"senderId" binding:"required"`
	CommunityID string  `json:"communityId" binding:"required"`
	ImageURL    *string `json:"imageURL"`
}
