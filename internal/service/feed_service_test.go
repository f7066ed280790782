package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/cinefeed/internal/model"
)

func newFeedService(d *deps) FeedService {
	return NewFeedService(d.followRepo, d.recRepo, d.commentRepo, d.userRepo, d.movieRepo)
}

func TestFeedEmptyWithoutFollowing(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "reader")
	svc := newFeedService(d)

	items, err := svc.Compose(context.Background(), "reader")
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestFeedOnlyFollowedAuthors(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "reader")
	d.seedUser(t, "followed")
	d.seedUser(t, "stranger")
	d.seedMovie(t, "m1")
	ctx := context.Background()

	require.NoError(t, d.followRepo.Create(ctx, "reader", "followed"))
	d.seedRec(t, &model.Recommendation{ID: "r-followed", AuthorID: "followed", MovieID: "m1"})
	d.seedRec(t, &model.Recommendation{ID: "r-stranger", AuthorID: "stranger", MovieID: "m1"})
	// 自己的推荐不进自己的 feed
	d.seedRec(t, &model.Recommendation{ID: "r-own", AuthorID: "reader", MovieID: "m1"})

	items, err := newFeedService(d).Compose(ctx, "reader")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "r-followed", items[0].ID)
}

func TestFeedOrdering(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "reader")
	d.seedUser(t, "author")
	d.seedMovie(t, "m1")
	d.seedMovie(t, "m2")
	d.seedMovie(t, "m3")
	ctx := context.Background()

	require.NoError(t, d.followRepo.Create(ctx, "reader", "author"))

	yesterday := model.Today().AddDate(0, 0, -1)
	d.seedRec(t, &model.Recommendation{ID: "r-old", AuthorID: "author", MovieID: "m1", CreatedOn: yesterday})
	// 同日两条按 id 倒序
	d.seedRec(t, &model.Recommendation{ID: "r-1", AuthorID: "author", MovieID: "m2"})
	d.seedRec(t, &model.Recommendation{ID: "r-2", AuthorID: "author", MovieID: "m3"})

	items, err := newFeedService(d).Compose(ctx, "reader")
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "r-2", items[0].ID)
	require.Equal(t, "r-1", items[1].ID)
	require.Equal(t, "r-old", items[2].ID)
}

func TestFeedItemShape(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "reader")
	author := d.seedUser(t, "author")
	movie := d.seedMovie(t, "m1")
	ctx := context.Background()

	require.NoError(t, d.followRepo.Create(ctx, "reader", "author"))
	rec := d.seedRec(t, &model.Recommendation{ID: "r1", AuthorID: "author", MovieID: "m1", Content: "see it twice"})

	for i := 0; i < 2; i++ {
		c := &model.Comment{AuthorID: "reader", RecommendationID: rec.ID, Content: "agreed"}
		require.NoError(t, d.commentRepo.Create(ctx, c))
	}

	items, err := newFeedService(d).Compose(ctx, "reader")
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	require.Equal(t, "see it twice", item.Content)
	require.EqualValues(t, 2, item.CommentCount)
	// 摘要只含身份字段
	require.Equal(t, author.ID, item.Author.ID)
	require.Equal(t, author.Username, item.Author.Username)
	require.Equal(t, movie.ID, item.Movie.ID)
	require.Equal(t, movie.Title, item.Movie.Title)
}
