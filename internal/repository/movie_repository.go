package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
)

// RecommendedMovieRow 电影 + 推荐数聚合行
type RecommendedMovieRow struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Poster              string `json:"poster,omitempty"`
	RecommendationCount int64  `json:"recommendationCount"`
}

type MovieRepository interface {
	Create(ctx context.Context, m *model.Movie) error
	FindByID(ctx context.Context, id string) (*model.Movie, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.Movie, error)
	List(ctx context.Context) ([]*model.Movie, error)
	SearchByTitle(ctx context.Context, title string) ([]*model.Movie, error)
	ListByGenre(ctx context.Context, genre string) ([]*model.Movie, error)
	ListByDirector(ctx context.Context, director string) ([]*model.Movie, error)
	Update(ctx context.Context, m *model.Movie) error
	// MostRecommended 按推荐数倒序、id 升序
	MostRecommended(ctx context.Context, limit int) ([]RecommendedMovieRow, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository { return &movieRepository{db: db} }

func (r *movieRepository) Create(ctx context.Context, m *model.Movie) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*model.Movie, error) {
	var m model.Movie
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Movie, error) {
	if len(ids) == 0 {
		return []*model.Movie{}, nil
	}
	var res []*model.Movie
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (r *movieRepository) List(ctx context.Context) ([]*model.Movie, error) {
	var res []*model.Movie
	err := r.db.WithContext(ctx).Order("title ASC").Find(&res).Error
	return res, err
}

func (r *movieRepository) SearchByTitle(ctx context.Context, title string) ([]*model.Movie, error) {
	var res []*model.Movie
	err := r.db.WithContext(ctx).
		Where("title LIKE ?", "%"+title+"%").
		Order("title ASC").
		Find(&res).Error
	return res, err
}

func (r *movieRepository) ListByGenre(ctx context.Context, genre string) ([]*model.Movie, error) {
	var res []*model.Movie
	err := r.db.WithContext(ctx).
		Where("genres LIKE ?", "%"+genre+"%").
		Order("title ASC").
		Find(&res).Error
	return res, err
}

func (r *movieRepository) ListByDirector(ctx context.Context, director string) ([]*model.Movie, error) {
	var res []*model.Movie
	err := r.db.WithContext(ctx).
		Where("director = ?", director).
		Order("title ASC").
		Find(&res).Error
	return res, err
}

func (r *movieRepository) Update(ctx context.Context, m *model.Movie) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *movieRepository) MostRecommended(ctx context.Context, limit int) ([]RecommendedMovieRow, error) {
	var rows []RecommendedMovieRow
	err := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Select("movies.id, movies.title, movies.poster, COUNT(recommendations.id) AS recommendation_count").
		Joins("LEFT JOIN recommendations ON recommendations.movie_id = movies.id").
		Group("movies.id").
		Order("recommendation_count DESC, movies.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
