package service

import (
	"context"

	"github.com/d60-Lab/cinefeed/internal/repository"
)

// 排行榜默认条数
const defaultRankingLimit = 100

// RankingService 三个只读排行查询，均以当前库内状态计算；
// 注入 Cache 时走旁路缓存，写路径负责显式失效（见各写服务）。
type RankingService interface {
	MostActiveUsers(ctx context.Context) ([]repository.ActiveUserRow, error)
	MostRecommendedMovies(ctx context.Context) ([]repository.RecommendedMovieRow, error)
	MostCommentedRecommendations(ctx context.Context) ([]repository.MostCommentedRow, error)
}

type rankingService struct {
	userRepo  repository.UserRepository
	movieRepo repository.MovieRepository
	recRepo   repository.RecommendationRepository
	cache     Cache
	limit     int
}

func NewRankingService(userRepo repository.UserRepository, movieRepo repository.MovieRepository, recRepo repository.RecommendationRepository, cache Cache) RankingService {
	return &rankingService{userRepo: userRepo, movieRepo: movieRepo, recRepo: recRepo, cache: cache, limit: defaultRankingLimit}
}

func (s *rankingService) MostActiveUsers(ctx context.Context) ([]repository.ActiveUserRow, error) {
	if s.cache != nil {
		var cached []repository.ActiveUserRow
		if s.cache.Get(ctx, CacheKeyMostActiveUsers, &cached) {
			return cached, nil
		}
	}
	rows, err := s.userRepo.MostActive(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, CacheKeyMostActiveUsers, rows)
	}
	return rows, nil
}

func (s *rankingService) MostRecommendedMovies(ctx context.Context) ([]repository.RecommendedMovieRow, error) {
	if s.cache != nil {
		var cached []repository.RecommendedMovieRow
		if s.cache.Get(ctx, CacheKeyMostRecommendedMovies, &cached) {
			return cached, nil
		}
	}
	rows, err := s.movieRepo.MostRecommended(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, CacheKeyMostRecommendedMovies, rows)
	}
	return rows, nil
}

func (s *rankingService) MostCommentedRecommendations(ctx context.Context) ([]repository.MostCommentedRow, error) {
	if s.cache != nil {
		var cached []repository.MostCommentedRow
		if s.cache.Get(ctx, CacheKeyMostCommented, &cached) {
			return cached, nil
		}
	}
	rows, err := s.recRepo.MostCommented(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, CacheKeyMostCommented, rows)
	}
	return rows, nil
}
