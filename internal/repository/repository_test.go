package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/pkg/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 每个 :memory: 连接是一个独立库，收敛到单连接
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) *model.User {
	t.Helper()
	u := &model.User{ID: id, Username: "u-" + id, Email: id + "@example.com", Password: "p", Role: "USER"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedMovie(t *testing.T, db *gorm.DB, id string) *model.Movie {
	t.Helper()
	m := &model.Movie{ID: id, Title: "movie-" + id}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedRecommendation(t *testing.T, db *gorm.DB, rec *model.Recommendation) *model.Recommendation {
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
	require.NoError(t, db.Create(rec).Error)
	return rec
}
