package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
)

// MostCommentedRow 推荐 + 评论数聚合行
type MostCommentedRow struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	MovieID      string    `json:"movieId"`
	Content      string    `json:"content"`
	CreatedOn    time.Time `json:"createdOn"`
	CommentCount int64     `json:"commentCount"`
}

type RecommendationRepository interface {
	// Create 落库一条推荐；同一 (author, movie, created_on) 已存在时返回
	// gorm.ErrDuplicatedKey（日配额由复合唯一键保证，检查与插入是同一次写）
	Create(ctx context.Context, rec *model.Recommendation) error
	FindByID(ctx context.Context, id string) (*model.Recommendation, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Recommendation, error)
	ListByMovie(ctx context.Context, movieID string) ([]*model.Recommendation, error)
	// ListByAuthors 供 feed 合成：被关注者们的全部推荐，时间倒序
	ListByAuthors(ctx context.Context, authorIDs []string) ([]*model.Recommendation, error)
	CountByMovie(ctx context.Context, movieID string) (int64, error)
	// MostCommented 按评论数倒序、id 升序
	MostCommented(ctx context.Context, limit int) ([]MostCommentedRow, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(ctx context.Context, rec *model.Recommendation) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) FindByID(ctx context.Context, id string) (*model.Recommendation, error) {
	var rec model.Recommendation
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) ListByAuthor(ctx context.Context, authorID string) ([]*model.Recommendation, error) {
	var res []*model.Recommendation
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_on DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *recommendationRepository) ListByMovie(ctx context.Context, movieID string) ([]*model.Recommendation, error) {
	var res []*model.Recommendation
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_on DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *recommendationRepository) ListByAuthors(ctx context.Context, authorIDs []string) ([]*model.Recommendation, error) {
	if len(authorIDs) == 0 {
		return []*model.Recommendation{}, nil
	}
	var res []*model.Recommendation
	err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("created_on DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *recommendationRepository) CountByMovie(ctx context.Context, movieID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("movie_id = ?", movieID).
		Count(&cnt).Error
	return cnt, err
}

func (r *recommendationRepository) MostCommented(ctx context.Context, limit int) ([]MostCommentedRow, error) {
	var rows []MostCommentedRow
	err := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Select("recommendations.id, recommendations.author_id, recommendations.movie_id, recommendations.content, recommendations.created_on, COUNT(comments.id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.recommendation_id = recommendations.id").
		Group("recommendations.id").
		Order("comment_count DESC, recommendations.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
