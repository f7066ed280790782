package model

import "time"

// User 用户（社区成员）
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex:ux_user_username;not null"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex:ux_user_email;not null"`
	Password     string    `gorm:"type:varchar(100);not null"`
	Forename     string    `gorm:"type:varchar(50)"`
	Surname      string    `gorm:"type:varchar(50)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'USER'"`
	Description  string    `gorm:"type:text"`
	RegisteredOn time.Time `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

// UserSummary 仅含身份字段的用户摘要（用于 feed、评论等嵌套场景）
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}
