package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/cinefeed/internal/model"
)

func newCommentService(d *deps, cache Cache) CommentService {
	return NewCommentService(d.commentRepo, d.userRepo, d.recRepo, cache)
}

func TestCommentCreate(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "author")
	d.seedUser(t, "commenter")
	d.seedMovie(t, "m1")
	rec := d.seedRec(t, &model.Recommendation{ID: "r1", AuthorID: "author", MovieID: "m1"})
	svc := newCommentService(d, nil)
	ctx := context.Background()

	view, err := svc.Create(ctx, "commenter", rec.ID, "  spot on  ")
	require.NoError(t, err)
	require.NotEmpty(t, view.ID)
	require.Equal(t, "spot on", view.Content)
	require.Equal(t, "commenter", view.Author.ID)

	cnt, err := svc.CountFor(ctx, rec.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)
}

func TestCommentCreateRejects(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "u1")
	d.seedMovie(t, "m1")
	rec := d.seedRec(t, &model.Recommendation{ID: "r1", AuthorID: "u1", MovieID: "m1"})
	svc := newCommentService(d, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", rec.ID, "   ")
	require.ErrorIs(t, err, ErrEmptyContent)
	_, err = svc.Create(ctx, "ghost", rec.ID, "fine")
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.Create(ctx, "u1", "no-such-rec", "fine")
	require.ErrorIs(t, err, ErrRecommendationNotFound)
}

func TestCommentCountForMissingRecommendation(t *testing.T) {
	d := setup(t)
	svc := newCommentService(d, nil)

	cnt, err := svc.CountFor(context.Background(), "nope")
	require.NoError(t, err)
	require.Zero(t, cnt)
}

func TestCommentLists(t *testing.T) {
	d := setup(t)
	d.seedUser(t, "u1")
	d.seedUser(t, "u2")
	d.seedMovie(t, "m1")
	d.seedMovie(t, "m2")
	r1 := d.seedRec(t, &model.Recommendation{ID: "r1", AuthorID: "u1", MovieID: "m1"})
	r2 := d.seedRec(t, &model.Recommendation{ID: "r2", AuthorID: "u1", MovieID: "m2"})
	svc := newCommentService(d, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u2", r1.ID, "one")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", r2.ID, "two")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", r1.ID, "three")
	require.NoError(t, err)

	byRec, err := svc.ListByRecommendation(ctx, r1.ID)
	require.NoError(t, err)
	require.Len(t, byRec, 2)
	for _, v := range byRec {
		require.Equal(t, r1.ID, v.RecommendationID)
		require.NotEmpty(t, v.Author.Username)
	}

	byUser, err := svc.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
}
