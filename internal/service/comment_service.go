package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
)

// CommentView 评论 + 作者摘要
type CommentView struct {
	ID               string            `json:"id"`
	RecommendationID string            `json:"recommendationId"`
	Content          string            `json:"content"`
	CreatedAt        time.Time         `json:"createdAt"`
	Author           model.UserSummary `json:"author"`
}

// CommentService 评论写入口；推荐本体的评论数永远按评论行现算
type CommentService interface {
	Create(ctx context.Context, authorID, recommendationID, content string) (*CommentView, error)
	ListByRecommendation(ctx context.Context, recommendationID string) ([]CommentView, error)
	ListByUser(ctx context.Context, userID string) ([]CommentView, error)
	// CountFor 推荐不存在或没有评论都返回 0
	CountFor(ctx context.Context, recommendationID string) (int64, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	recRepo     repository.RecommendationRepository
	cache       Cache
}

func NewCommentService(commentRepo repository.CommentRepository, userRepo repository.UserRepository, recRepo repository.RecommendationRepository, cache Cache) CommentService {
	return &commentService{commentRepo: commentRepo, userRepo: userRepo, recRepo: recRepo, cache: cache}
}

func (s *commentService) Create(ctx context.Context, authorID, recommendationID, content string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, translateUserLookup(err)
	}
	if _, err := s.recRepo.FindByID(ctx, recommendationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}

	c := &model.Comment{AuthorID: authorID, RecommendationID: recommendationID, Content: content}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, CacheKeyMostCommented)
	}
	return &CommentView{
		ID:               c.ID,
		RecommendationID: c.RecommendationID,
		Content:          c.Content,
		CreatedAt:        c.CreatedAt,
		Author:           author.Summary(),
	}, nil
}

func (s *commentService) ListByRecommendation(ctx context.Context, recommendationID string) ([]CommentView, error) {
	comments, err := s.commentRepo.ListByRecommendation(ctx, recommendationID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, comments)
}

func (s *commentService) ListByUser(ctx context.Context, userID string) ([]CommentView, error) {
	comments, err := s.commentRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, comments)
}

func (s *commentService) CountFor(ctx context.Context, recommendationID string) (int64, error) {
	return s.commentRepo.CountByRecommendation(ctx, recommendationID)
}

func (s *commentService) toViews(ctx context.Context, comments []*model.Comment) ([]CommentView, error) {
	authorSet := make(map[string]struct{}, len(comments))
	for _, c := range comments {
		authorSet[c.AuthorID] = struct{}{}
	}
	authors, err := s.userRepo.FindByIDs(ctx, keys(authorSet))
	if err != nil {
		return nil, err
	}
	authorByID := make(map[string]model.UserSummary, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = u.Summary()
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:               c.ID,
			RecommendationID: c.RecommendationID,
			Content:          c.Content,
			CreatedAt:        c.CreatedAt,
			Author:           authorByID[c.AuthorID],
		})
	}
	return views, nil
}
