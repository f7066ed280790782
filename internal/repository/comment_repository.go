package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	ListByRecommendation(ctx context.Context, recommendationID string) ([]*model.Comment, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Comment, error)
	// CountByRecommendation 推荐不存在或无评论时都返回 0
	CountByRecommendation(ctx context.Context, recommendationID string) (int64, error)
	// CountByRecommendations 批量聚合，feed 合成用；没有评论的推荐不在结果里
	CountByRecommendations(ctx context.Context, recommendationIDs []string) (map[string]int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepository) ListByRecommendation(ctx context.Context, recommendationID string) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("recommendation_id = ?", recommendationID).
		Order("created_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorID string) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *commentRepository) CountByRecommendation(ctx context.Context, recommendationID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("recommendation_id = ?", recommendationID).
		Count(&cnt).Error
	return cnt, err
}

func (r *commentRepository) CountByRecommendations(ctx context.Context, recommendationIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(recommendationIDs))
	if len(recommendationIDs) == 0 {
		return counts, nil
	}
	type row struct {
		RecommendationID string
		Cnt              int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("recommendation_id, COUNT(id) AS cnt").
		Where("recommendation_id IN ?", recommendationIDs).
		Group("recommendation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.RecommendationID] = r.Cnt
	}
	return counts, nil
}
