package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
)

// MovieInput 新建/更新电影入参
type MovieInput struct {
	Title       string
	Description string
	Poster      string
	Trailer     string
	Genres      string
	Director    string
	Stars       string
	ReleaseYear int
	Runtime     int
}

// MovieService 片库维护与检索
type MovieService interface {
	Create(ctx context.Context, in MovieInput) (*model.Movie, error)
	Get(ctx context.Context, id string) (*model.Movie, error)
	List(ctx context.Context) ([]*model.Movie, error)
	SearchByTitle(ctx context.Context, title string) ([]*model.Movie, error)
	ListByGenre(ctx context.Context, genre string) ([]*model.Movie, error)
	ListByDirector(ctx context.Context, director string) ([]*model.Movie, error)
	Update(ctx context.Context, id string, in MovieInput) (*model.Movie, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	cache     Cache
}

func NewMovieService(movieRepo repository.MovieRepository, cache Cache) MovieService {
	return &movieService{movieRepo: movieRepo, cache: cache}
}

func (s *movieService) Create(ctx context.Context, in MovieInput) (*model.Movie, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrEmptyTitle
	}
	m := &model.Movie{
		Title:       in.Title,
		Description: in.Description,
		Poster:      in.Poster,
		Trailer:     in.Trailer,
		Genres:      in.Genres,
		Director:    in.Director,
		Stars:       in.Stars,
		ReleaseYear: in.ReleaseYear,
		Runtime:     in.Runtime,
	}
	if err := s.movieRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	// 热门电影榜含零推荐电影，新条目会改变榜单内容
	if s.cache != nil {
		s.cache.Invalidate(ctx, CacheKeyMostRecommendedMovies)
	}
	return m, nil
}

func (s *movieService) Get(ctx context.Context, id string) (*model.Movie, error) {
	m, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *movieService) List(ctx context.Context) ([]*model.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *movieService) SearchByTitle(ctx context.Context, title string) ([]*model.Movie, error) {
	return s.movieRepo.SearchByTitle(ctx, title)
}

func (s *movieService) ListByGenre(ctx context.Context, genre string) ([]*model.Movie, error) {
	return s.movieRepo.ListByGenre(ctx, genre)
}

func (s *movieService) ListByDirector(ctx context.Context, director string) ([]*model.Movie, error) {
	return s.movieRepo.ListByDirector(ctx, director)
}

func (s *movieService) Update(ctx context.Context, id string, in MovieInput) (*model.Movie, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t := strings.TrimSpace(in.Title); t != "" {
		m.Title = t
	}
	if in.Description != "" {
		m.Description = in.Description
	}
	if in.Poster != "" {
		m.Poster = in.Poster
	}
	if in.Trailer != "" {
		m.Trailer = in.Trailer
	}
	if in.Genres != "" {
		m.Genres = in.Genres
	}
	if in.Director != "" {
		m.Director = in.Director
	}
	if in.Stars != "" {
		m.Stars = in.Stars
	}
	if in.ReleaseYear != 0 {
		m.ReleaseYear = in.ReleaseYear
	}
	if in.Runtime != 0 {
		m.Runtime = in.Runtime
	}
	if err := s.movieRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	// 榜单行携带 title/poster，更新后缓存副本过期
	if s.cache != nil {
		s.cache.Invalidate(ctx, CacheKeyMostRecommendedMovies)
	}
	return m, nil
}
