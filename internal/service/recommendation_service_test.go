package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/cinefeed/internal/model"
)

func newRecService(d *deps, cache Cache) RecommendationService {
	return NewRecommendationService(d.recRepo, d.userRepo, d.movieRepo, cache)
}

func TestRecommendationCreate(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "u1")
	d.seedMovie(t, "m1")
	svc := newRecService(d, nil)
	ctx := context.Background()

	rec, err := svc.Create(ctx, "u1", "m1", "  a classic  ")
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	// 内容落库前去掉首尾空白
	require.Equal(t, "a classic", rec.Content)
	require.Equal(t, model.Today(), rec.CreatedOn)

	got, err := svc.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
}

func TestRecommendationCreateBlankContent(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "u1")
	d.seedMovie(t, "m1")
	svc := newRecService(d, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "m1", "")
	require.ErrorIs(t, err, ErrEmptyContent)
	_, err = svc.Create(ctx, "u1", "m1", "   \t\n ")
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestRecommendationCreateUnknownRefs(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "u1")
	d.seedMovie(t, "m1")
	svc := newRecService(d, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ghost", "m1", "fine")
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.Create(ctx, "u1", "no-such-movie", "fine")
	require.ErrorIs(t, err, ErrMovieNotFound)
}

func TestRecommendationDailyQuota(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "u1")
	d.seedUser(t, "u2")
	d.seedMovie(t, "m1")
	d.seedMovie(t, "m2")
	svc := newRecService(d, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "m1", "first take")
	require.NoError(t, err)

	// 同人同片同日第二条被配额拦下，内容不同也一样
	_, err = svc.Create(ctx, "u1", "m1", "second take")
	require.ErrorIs(t, err, ErrAlreadyRecommended)

	// 换电影或换作者不受影响
	_, err = svc.Create(ctx, "u1", "m2", "other movie")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", "m1", "other author")
	require.NoError(t, err)
}

func TestRecommendationFindByIDMissing(t *testing.T) {
	d := setup(t)
	svc := newRecService(d, nil)

	_, err := svc.FindByID(context.Background(), "nope")
	require.ErrorIs(t, err, ErrRecommendationNotFound)
}
