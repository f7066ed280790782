package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
)

func TestRecommendationDailyUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1")
	seedMovie(t, db, "m1")

	today := model.Today()
	first := &model.Recommendation{AuthorID: "u1", MovieID: "m1", Content: "great", CreatedOn: today}
	require.NoError(t, repo.Create(ctx, first))

	// 同一 (作者, 电影, 日期) 再插一条撞唯一键
	dup := &model.Recommendation{AuthorID: "u1", MovieID: "m1", Content: "still great", CreatedOn: today}
	require.ErrorIs(t, repo.Create(ctx, dup), gorm.ErrDuplicatedKey)

	// 换一天可以再推
	later := &model.Recommendation{AuthorID: "u1", MovieID: "m1", Content: "again", CreatedOn: today.AddDate(0, 0, 1)}
	require.NoError(t, repo.Create(ctx, later))
}

func TestRecommendationListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1")
	seedMovie(t, db, "m1")
	seedMovie(t, db, "m2")
	seedMovie(t, db, "m3")

	day1 := model.Today().AddDate(0, 0, -2)
	day2 := model.Today().AddDate(0, 0, -1)
	seedRecommendation(t, db, &model.Recommendation{ID: "r-old", AuthorID: "u1", MovieID: "m1", CreatedOn: day1})
	// 同日两条：id 倒序决定先后
	seedRecommendation(t, db, &model.Recommendation{ID: "r-a", AuthorID: "u1", MovieID: "m2", CreatedOn: day2})
	seedRecommendation(t, db, &model.Recommendation{ID: "r-b", AuthorID: "u1", MovieID: "m3", CreatedOn: day2})

	recs, err := repo.ListByAuthor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "r-b", recs[0].ID)
	require.Equal(t, "r-a", recs[1].ID)
	require.Equal(t, "r-old", recs[2].ID)

	byMovie, err := repo.ListByMovie(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, byMovie, 1)
	require.Equal(t, "r-old", byMovie[0].ID)
}

func TestRecommendationListByAuthors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedMovie(t, db, "m1")
	seedMovie(t, db, "m2")

	seedRecommendation(t, db, &model.Recommendation{ID: "r1", AuthorID: "u1", MovieID: "m1"})
	seedRecommendation(t, db, &model.Recommendation{ID: "r2", AuthorID: "u2", MovieID: "m2"})

	recs, err := repo.ListByAuthors(ctx, []string{"u1"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "r1", recs[0].ID)

	empty, err := repo.ListByAuthors(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMostCommentedOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedMovie(t, db, "m1")

	seedRecommendation(t, db, &model.Recommendation{ID: "r1", AuthorID: "u1", MovieID: "m1"})
	seedRecommendation(t, db, &model.Recommendation{ID: "r2", AuthorID: "u2", MovieID: "m1"})

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&model.Comment{ID: string(rune('x'+i)), AuthorID: "u1", RecommendationID: "r2", Content: "c"}).Error)
	}
	require.NoError(t, db.Create(&model.Comment{ID: "y0", AuthorID: "u2", RecommendationID: "r1", Content: "c"}).Error)

	rows, err := repo.MostCommented(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "r2", rows[0].ID)
	require.EqualValues(t, 3, rows[0].CommentCount)
	require.Equal(t, "r1", rows[1].ID)
	require.EqualValues(t, 1, rows[1].CommentCount)
}
