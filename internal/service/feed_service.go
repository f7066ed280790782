package service

import (
	"context"
	"time"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
)

// FeedItem feed 条目：推荐本体 + 评论数 + 作者/电影摘要。
// 只嵌身份字段，不嵌完整对象，避免沿关注链放大响应体。
type FeedItem struct {
	ID           string             `json:"id"`
	Content      string             `json:"content"`
	CreatedOn    time.Time          `json:"createdOn"`
	Author       model.UserSummary  `json:"author"`
	Movie        model.MovieSummary `json:"movie"`
	CommentCount int64              `json:"commentCount"`
}

// FeedService 纯读合成：关注出边 → 推荐 → 评论数/摘要，无副作用
type FeedService interface {
	Compose(ctx context.Context, userID string) ([]FeedItem, error)
}

type feedService struct {
	followRepo  repository.FollowRepository
	recRepo     repository.RecommendationRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	movieRepo   repository.MovieRepository
}

func NewFeedService(followRepo repository.FollowRepository, recRepo repository.RecommendationRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository, movieRepo repository.MovieRepository) FeedService {
	return &feedService{followRepo: followRepo, recRepo: recRepo, commentRepo: commentRepo, userRepo: userRepo, movieRepo: movieRepo}
}

func (s *feedService) Compose(ctx context.Context, userID string) ([]FeedItem, error) {
	followees, err := s.followRepo.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followees) == 0 {
		// 没关注任何人：空 feed，不是错误
		return []FeedItem{}, nil
	}

	recs, err := s.recRepo.ListByAuthors(ctx, followees)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return []FeedItem{}, nil
	}

	recIDs := make([]string, 0, len(recs))
	authorSet := make(map[string]struct{})
	movieSet := make(map[string]struct{})
	for _, r := range recs {
		recIDs = append(recIDs, r.ID)
		authorSet[r.AuthorID] = struct{}{}
		movieSet[r.MovieID] = struct{}{}
	}

	counts, err := s.commentRepo.CountByRecommendations(ctx, recIDs)
	if err != nil {
		return nil, err
	}
	authors, err := s.userRepo.FindByIDs(ctx, keys(authorSet))
	if err != nil {
		return nil, err
	}
	movies, err := s.movieRepo.FindByIDs(ctx, keys(movieSet))
	if err != nil {
		return nil, err
	}

	authorByID := make(map[string]model.UserSummary, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = u.Summary()
	}
	movieByID := make(map[string]model.MovieSummary, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m.Summary()
	}

	// recs 已按 created_on DESC, id DESC 排好，直接保序组装
	items := make([]FeedItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, FeedItem{
			ID:           r.ID,
			Content:      r.Content,
			CreatedOn:    r.CreatedOn,
			Author:       authorByID[r.AuthorID],
			Movie:        movieByID[r.MovieID],
			CommentCount: counts[r.ID],
		})
	}
	return items, nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
