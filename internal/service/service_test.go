package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
	"github.com/d60-Lab/cinefeed/pkg/database"
)

// deps 一次性建好全部仓储，各测试按需取用
type deps struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	movieRepo   repository.MovieRepository
	recRepo     repository.RecommendationRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository
	fanRepo     repository.FanRepository
	msgRepo     repository.MessageRepository
}

func setup(t *testing.T) *deps {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 每个 :memory: 连接是一个独立库，收敛到单连接
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return &deps{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		movieRepo:   repository.NewMovieRepository(db),
		recRepo:     repository.NewRecommendationRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		followRepo:  repository.NewFollowRepository(db),
		fanRepo:     repository.NewFanRepository(db),
		msgRepo:     repository.NewMessageRepository(db),
	}
}

func (d *deps) seedUser(t *testing.T, id string) *model.User {
	t.Helper()
	u := &model.User{ID: id, Username: "u-" + id, Email: id + "@example.com", Password: "p", Role: "USER"}
	require.NoError(t, d.db.Create(u).Error)
	return u
}

func (d *deps) seedMovie(t *testing.T, id string) *model.Movie {
	t.Helper()
	m := &model.Movie{ID: id, Title: "movie-" + id}
	require.NoError(t, d.db.Create(m).Error)
	return m
}

func (d *deps) seedRec(t *testing.T, rec *model.Recommendation) *model.Recommendation {
	t.Helper()
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Content == "" {
		rec.Content = "worth watching"
	}
	if rec.CreatedOn.IsZero() {
		rec.CreatedOn = model.Today()
	}
	require.NoError(t, d.db.Create(rec).Error)
	return rec
}
