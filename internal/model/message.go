package model

import "time"

// Message 私信（单向一条，会话由两端用户 id 共同确定）
type Message struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	SenderID   string    `gorm:"type:varchar(36);not null;index:idx_msg_sender"`
	ReceiverID string    `gorm:"type:varchar(36);not null;index:idx_msg_receiver"`
	Content    string    `gorm:"type:varchar(1000);not null"`
	SentAt     time.Time `gorm:"index:idx_msg_sent"`
	IsRead     bool      `gorm:"not null;default:false"`
}

func (Message) TableName() string { return "messages" }
