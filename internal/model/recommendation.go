package model

import "time"

// Recommendation 推荐（某用户对某电影的安利）
type Recommendation struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	AuthorID string `gorm:"type:varchar(36);not null;index:idx_rec_author;uniqueIndex:ux_rec_author_movie_day"`
	MovieID  string `gorm:"type:varchar(36);not null;index:idx_rec_movie;uniqueIndex:ux_rec_author_movie_day"`
	Content  string `gorm:"type:text;not null"`
	// CreatedOn 日粒度创建日期；复合唯一键限制同一用户同一电影每天最多一条
	// ux_rec_author_movie_day = (author_id, movie_id, created_on)
	CreatedOn time.Time `gorm:"type:date;not null;uniqueIndex:ux_rec_author_movie_day"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Recommendation) TableName() string { return "recommendations" }

// Today 返回 UTC 日粒度的当前日期，作为 created_on 的规范取值。
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
