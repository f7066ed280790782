package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMovieService(d *deps, cache Cache) MovieService {
	return NewMovieService(d.movieRepo, cache)
}

func TestMovieCreateAndGet(t *testing.T) {
	d := setup(t)
	svc := newMovieService(d, nil)
	ctx := context.Background()

	m, err := svc.Create(ctx, MovieInput{Title: "  Heat  ", Director: "Michael Mann", ReleaseYear: 1995})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.Equal(t, "Heat", m.Title)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Michael Mann", got.Director)

	_, err = svc.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieCreateRequiresTitle(t *testing.T) {
	d := setup(t)
	svc := newMovieService(d, nil)

	_, err := svc.Create(context.Background(), MovieInput{Title: "   "})
	require.ErrorIs(t, err, ErrEmptyTitle)
}

func TestMovieSearch(t *testing.T) {
	d := setup(t)
	svc := newMovieService(d, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, MovieInput{Title: "Alien", Genres: "Horror,SciFi", Director: "Ridley Scott"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, MovieInput{Title: "Aliens", Genres: "Action,SciFi", Director: "James Cameron"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, MovieInput{Title: "Heat", Genres: "Crime", Director: "Michael Mann"})
	require.NoError(t, err)

	byTitle, err := svc.SearchByTitle(ctx, "Alien")
	require.NoError(t, err)
	require.Len(t, byTitle, 2)

	byGenre, err := svc.ListByGenre(ctx, "SciFi")
	require.NoError(t, err)
	require.Len(t, byGenre, 2)

	byDirector, err := svc.ListByDirector(ctx, "Michael Mann")
	require.NoError(t, err)
	require.Len(t, byDirector, 1)
	require.Equal(t, "Heat", byDirector[0].Title)
}

func TestMovieUpdatePartial(t *testing.T) {
	d := setup(t)
	svc := newMovieService(d, nil)
	ctx := context.Background()

	m, err := svc.Create(ctx, MovieInput{Title: "Blade Runner", ReleaseYear: 1982})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, MovieInput{Poster: "https://img.example.com/br.jpg"})
	require.NoError(t, err)
	require.Equal(t, "Blade Runner", updated.Title)
	require.EqualValues(t, 1982, updated.ReleaseYear)
	require.Equal(t, "https://img.example.com/br.jpg", updated.Poster)

	_, err = svc.Update(ctx, "nope", MovieInput{Title: "x"})
	require.ErrorIs(t, err, ErrMovieNotFound)
}
