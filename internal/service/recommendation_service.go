package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
)

// RecommendationService 推荐写入口 + 查询。
// 日配额策略：同一用户对同一电影每个 UTC 自然日最多一条推荐，
// 由 (author_id, movie_id, created_on) 唯一键在插入时一并裁决。
type RecommendationService interface {
	Create(ctx context.Context, authorID, movieID, content string) (*model.Recommendation, error)
	FindByID(ctx context.Context, id string) (*model.Recommendation, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Recommendation, error)
	FindByMovie(ctx context.Context, movieID string) ([]*model.Recommendation, error)
}

type recommendationService struct {
	recRepo   repository.RecommendationRepository
	userRepo  repository.UserRepository
	movieRepo repository.MovieRepository
	cache     Cache
}

func NewRecommendationService(recRepo repository.RecommendationRepository, userRepo repository.UserRepository, movieRepo repository.MovieRepository, cache Cache) RecommendationService {
	return &recommendationService{recRepo: recRepo, userRepo: userRepo, movieRepo: movieRepo, cache: cache}
}

func (s *recommendationService) Create(ctx context.Context, authorID, movieID, content string) (*model.Recommendation, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		return nil, translateUserLookup(err)
	}
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	rec := &model.Recommendation{
		AuthorID:  authorID,
		MovieID:   movieID,
		Content:   content,
		CreatedOn: model.Today(),
	}
	if err := s.recRepo.Create(ctx, rec); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRecommended
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, CacheKeyMostActiveUsers, CacheKeyMostRecommendedMovies, CacheKeyMostCommented)
	}
	return rec, nil
}

func (s *recommendationService) FindByID(ctx context.Context, id string) (*model.Recommendation, error) {
	rec, err := s.recRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recommendationService) FindByUser(ctx context.Context, userID string) ([]*model.Recommendation, error) {
	return s.recRepo.ListByAuthor(ctx, userID)
}

func (s *recommendationService) FindByMovie(ctx context.Context, movieID string) ([]*model.Recommendation, error) {
	return s.recRepo.ListByMovie(ctx, movieID)
}
