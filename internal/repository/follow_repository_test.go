package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/pkg/database"
)

func TestFollowRepositoryCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a")
	seedUser(t, db, "b")

	require.NoError(t, repo.Create(ctx, "a", "b"))

	// 同一对 (follower, followee) 第二次插入撞唯一键
	err := repo.Create(ctx, "a", "b")
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)

	// 反向边是另一条边
	require.NoError(t, repo.Create(ctx, "b", "a"))
}

func TestFollowRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a")
	seedUser(t, db, "b")

	deleted, err := repo.Delete(ctx, "a", "b")
	require.NoError(t, err)
	require.False(t, deleted)

	require.NoError(t, repo.Create(ctx, "a", "b"))
	deleted, err = repo.Delete(ctx, "a", "b")
	require.NoError(t, err)
	require.True(t, deleted)

	exists, err := repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFollowRepositoryLists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		seedUser(t, db, id)
	}
	require.NoError(t, repo.Create(ctx, "a", "b"))
	require.NoError(t, repo.Create(ctx, "a", "c"))
	require.NoError(t, repo.Create(ctx, "b", "c"))

	following, err := repo.ListFolloweeIDs(ctx, "a")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"b", "c"}, following)

	followers, err := repo.ListFollowerIDs(ctx, "c")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, followers)

	none, err := repo.ListFolloweeIDs(ctx, "c")
	require.NoError(t, err)
	require.Empty(t, none)
}

func BenchmarkFollowWrite(b *testing.B) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	repo := NewFollowRepository(db)
	ctx := context.Background()

	users := make([]model.User, 1000)
	for i := range users {
		id := fmt.Sprintf("u%04d", i)
		users[i] = model.User{ID: id, Username: id, Email: id + "@example.com", Password: "p"}
	}
	if err := db.Create(&users).Error; err != nil {
		b.Fatalf("seed users: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[i%len(users)].ID
		to := users[(i*7+1)%len(users)].ID
		if from == to {
			continue
		}
		if err := repo.Create(ctx, from, to); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			b.Fatalf("create: %v", err)
		}
	}
}
