package model

import "time"

// Movie 电影条目
type Movie struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Title       string `gorm:"type:varchar(100);not null;index:idx_movie_title"`
	Description string `gorm:"type:text"`
	Poster      string `gorm:"type:text"`
	Trailer     string `gorm:"type:text"`
	Genres      string `gorm:"type:varchar(100);index:idx_movie_genres"`
	Director    string `gorm:"type:varchar(50);index:idx_movie_director"`
	Stars       string `gorm:"type:varchar(1000)"`
	ReleaseYear int    `gorm:"index:idx_movie_year"`
	// Runtime 片长（分钟）
	Runtime   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Movie) TableName() string { return "movies" }

// MovieSummary 仅含身份字段的电影摘要
type MovieSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster,omitempty"`
}

func (m *Movie) Summary() MovieSummary {
	return MovieSummary{ID: m.ID, Title: m.Title, Poster: m.Poster}
}
