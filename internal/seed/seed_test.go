package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/localnerve/gamesdb/data"
	"github.com/localnerve/gamesdb/internal/models"
	"github.com/localnerve/gamesdb/internal/services"
	"github.com/localnerve/gamesdb/internal/store"
	"github.com/localnerve/gamesdb/internal/testenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEmbeddedCatalogue(t *testing.T) {
	ctx := context.Background()
	st := store.New(testenv.OpenSQLite(t))
	cat := services.NewCatalogue(st)

	seed, err := Parse(data.SeedCatalogue)
	require.NoError(t, err)

	result, err := Apply(ctx, cat, st, seed)
	require.NoError(t, err)
	assert.Equal(t, len(seed.Genres), result.Genres)
	assert.Equal(t, len(seed.Publishers), result.Publishers)
	assert.Equal(t, len(seed.Developers), result.Developers)
	assert.Equal(t, len(seed.Platforms), result.Platforms)
	assert.Equal(t, len(seed.Games), result.Games)

	games, err := cat.Games.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, len(seed.Games))

	witcher := games[0]
	assert.Equal(t, "The Witcher 3: Wild Hunt", witcher.Title)
	require.NotNil(t, witcher.Genre)
	assert.Equal(t, "RPG", witcher.Genre.Name)
	require.NotNil(t, witcher.Developer)
	assert.Equal(t, "CD Projekt Red", witcher.Developer.Name)
	require.NotNil(t, witcher.ReleaseDate)
	assert.Equal(t, "2015-05-19", witcher.ReleaseDate.String())

	platforms, err := store.List[models.Platform](ctx, st)
	require.NoError(t, err)
	assert.Len(t, platforms, len(seed.Platforms))

	// a second run is refused
	_, err = Apply(ctx, cat, st, seed)
	assert.True(t, errors.Is(err, ErrNotEmpty))
}

func TestApplyUnknownRelation(t *testing.T) {
	ctx := context.Background()
	st := store.New(testenv.OpenSQLite(t))
	cat := services.NewCatalogue(st)

	seed, err := Parse([]byte(`{"genres":["RPG"],"games":[{"title":"Doom","genre":"FPS"}]}`))
	require.NoError(t, err)

	_, err = Apply(ctx, cat, st, seed)
	assert.True(t, errors.Is(err, store.ErrReferentialViolation))
	assert.Contains(t, err.Error(), `genre "FPS"`)

	n, err := store.Count[models.Game](ctx, st)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"games": [{"title": "Doom", "releaseDate": "yesterday"}]}`))
	assert.Error(t, err)
}
