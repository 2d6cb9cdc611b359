package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/localnerve/gamesdb/internal/store"
	"github.com/localnerve/gamesdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenres(t *testing.T) {
	cat, _ := newCatalogue(t)
	ctx := context.Background()

	genres, err := cat.Genres.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)

	rpg, err := cat.Genres.Create(ctx, types.AddGenreRequest{Name: "RPG"})
	require.NoError(t, err)
	fps, err := cat.Genres.Create(ctx, types.AddGenreRequest{Name: "FPS"})
	require.NoError(t, err)

	genres, err = cat.Genres.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.GenreProjection{{ID: rpg, Name: "RPG"}, {ID: fps, Name: "FPS"}}, genres)

	_, err = cat.Genres.Create(ctx, types.AddGenreRequest{Name: ""})
	assert.True(t, errors.Is(err, store.ErrConstraintViolation))
	assert.Contains(t, err.Error(), "name is required")

	_, err = cat.Genres.Create(ctx, types.AddGenreRequest{Name: strings.Repeat("g", 101)})
	assert.True(t, errors.Is(err, store.ErrConstraintViolation))
	assert.Contains(t, err.Error(), "name must be at most 100 characters")
}

func TestPublishers(t *testing.T) {
	cat, _ := newCatalogue(t)
	ctx := context.Background()

	id, err := cat.Publishers.Create(ctx, types.AddPublisherRequest{Name: strings.Repeat("p", 200)})
	require.NoError(t, err)

	publishers, err := cat.Publishers.List(ctx)
	require.NoError(t, err)
	require.Len(t, publishers, 1)
	assert.Equal(t, id, publishers[0].ID)

	_, err = cat.Publishers.Create(ctx, types.AddPublisherRequest{Name: strings.Repeat("p", 201)})
	assert.True(t, errors.Is(err, store.ErrConstraintViolation))
}

func TestDevelopers(t *testing.T) {
	cat, _ := newCatalogue(t)
	ctx := context.Background()

	id, err := cat.Developers.Create(ctx, types.AddDeveloperRequest{Name: "id Software"})
	require.NoError(t, err)

	developers, err := cat.Developers.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.DeveloperProjection{{ID: id, Name: "id Software"}}, developers)

	_, err = cat.Developers.Create(ctx, types.AddDeveloperRequest{})
	assert.True(t, errors.Is(err, store.ErrConstraintViolation))
}
