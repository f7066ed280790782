package model

import "time"

// Comment 评论，挂在一条推荐下
type Comment struct {
	ID               string `gorm:"primaryKey;type:varchar(36)"`
	AuthorID         string `gorm:"type:varchar(36);not null;index:idx_comment_author"`
	RecommendationID string `gorm:"type:varchar(36);not null;index:idx_comment_rec"`
	Content          string `gorm:"type:text;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Comment) TableName() string { return "comments" }
