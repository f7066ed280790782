package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/cinefeed/config"
	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
	"github.com/d60-Lab/cinefeed/internal/service"
	"github.com/d60-Lab/cinefeed/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// feed 合成读路径压测：一个读者关注 N 个作者，每个作者 RECS 条推荐
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	followRepo := repository.NewFollowRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	feedSvc := service.NewFeedService(followRepo, recRepo, commentRepo, userRepo, movieRepo)

	ctx := context.Background()

	N := envInt("N", 200)      // 关注的作者数
	RECS := envInt("RECS", 20) // 每个作者的推荐数
	ROUNDS := envInt("ROUNDS", 500)

	reader := model.User{ID: "reader", Username: "reader", Email: "reader@example.com", Password: "p"}
	_ = db.Where("id = ?", reader.ID).FirstOrCreate(&reader).Error

	// seed authors + movies + recommendations + follow edges
	today := model.Today()
	for i := 0; i < N; i++ {
		authorID := uuid.New().String()
		author := model.User{ID: authorID, Username: "a" + authorID[:8], Email: authorID[:8] + "@example.com", Password: "p"}
		_ = db.Create(&author).Error
		_ = db.Create(&model.Follow{ID: uuid.New().String(), FollowerID: reader.ID, FolloweeID: authorID}).Error

		recs := make([]model.Recommendation, RECS)
		for j := 0; j < RECS; j++ {
			movieID := uuid.New().String()
			_ = db.Create(&model.Movie{ID: movieID, Title: "m" + movieID[:8]}).Error
			recs[j] = model.Recommendation{
				ID:        uuid.New().String(),
				AuthorID:  authorID,
				MovieID:   movieID,
				Content:   "worth watching",
				CreatedOn: today.AddDate(0, 0, -j),
			}
		}
		_ = db.Create(&recs).Error
	}

	lats := make([]time.Duration, 0, ROUNDS)
	var items int
	start := time.Now()
	for i := 0; i < ROUNDS; i++ {
		t0 := time.Now()
		feed := must(feedSvc.Compose(ctx, reader.ID))
		lats = append(lats, time.Since(t0))
		items = len(feed)
	}
	total := time.Since(start)

	fmt.Printf("feed compose: authors=%d recs/author=%d items=%d rounds=%d\n", N, RECS, items, ROUNDS)
	fmt.Printf("total=%v qps=%.1f\n", total, float64(ROUNDS)/total.Seconds())
	fmt.Printf("p50=%v p95=%v p99=%v\n", pct(lats, 0.50), pct(lats, 0.95), pct(lats, 0.99))
}
