package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/gamesdb/internal/models"
	"github.com/localnerve/gamesdb/internal/store"
	"github.com/localnerve/gamesdb/internal/testenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	store     *store.Store
	genre     uint64
	publisher uint64
	developer uint64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	st := store.New(testenv.OpenSQLite(t))

	genre, err := st.Insert(ctx, &models.Genre{Name: "RPG"})
	require.NoError(t, err)
	publisher, err := st.Insert(ctx, &models.Publisher{Name: "CD Projekt"})
	require.NoError(t, err)
	developer, err := st.Insert(ctx, &models.Developer{Name: "CD Projekt Red"})
	require.NoError(t, err)

	return fixture{store: st, genre: genre, publisher: publisher, developer: developer}
}

func TestInsertAssignsIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.store.Insert(ctx, &models.Platform{Name: "PC"})
	require.NoError(t, err)
	second, err := f.store.Insert(ctx, &models.Platform{Name: "Switch"})
	require.NoError(t, err)

	assert.NotZero(t, first)
	assert.Greater(t, second, first)

	platforms, err := store.List[models.Platform](ctx, f.store)
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	assert.Equal(t, "PC", platforms[0].Name)
	assert.Equal(t, "Switch", platforms[1].Name)
}

func TestInsertGameWithRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	released := datatypes.Date(time.Date(2015, time.May, 19, 0, 0, 0, 0, time.UTC))
	id, err := f.store.Insert(ctx, &models.Game{
		Title:       "The Witcher 3",
		Description: ptr("Open world RPG"),
		ReleaseDate: &released,
		GenreID:     &f.genre,
		PublisherID: &f.publisher,
		DeveloperID: &f.developer,
	})
	require.NoError(t, err)

	game, found, err := f.store.FindGame(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "The Witcher 3", game.Title)
	require.NotNil(t, game.Genre)
	assert.Equal(t, "RPG", game.Genre.Name)
	require.NotNil(t, game.Publisher)
	assert.Equal(t, "CD Projekt", game.Publisher.Name)
	require.NotNil(t, game.Developer)
	assert.Equal(t, "CD Projekt Red", game.Developer.Name)
	require.NotNil(t, game.ReleaseDate)
	assert.Equal(t, "2015-05-19", time.Time(*game.ReleaseDate).UTC().Format("2006-01-02"))
}

func TestInsertGameMissingReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Insert(ctx, &models.Game{Title: "Orphan", PublisherID: ptr(uint64(999))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrReferentialViolation))
	assert.Contains(t, err.Error(), "publisher 999")

	n, err := store.Count[models.Game](ctx, f.store)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInsertEmptyNameViolatesConstraint(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Insert(context.Background(), &models.Genre{Name: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrConstraintViolation), err.Error())
}

func TestFindMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game, found, err := f.store.FindGame(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, game)

	genre, found, err := store.Find[models.Genre](ctx, f.store, f.genre)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "RPG", genre.Name)
}

func TestListGamesResolvesRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Insert(ctx, &models.Game{Title: "The Witcher 3", GenreID: &f.genre, DeveloperID: &f.developer})
	require.NoError(t, err)
	_, err = f.store.Insert(ctx, &models.Game{Title: "Cyberpunk 2077", PublisherID: &f.publisher})
	require.NoError(t, err)

	games, err := f.store.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "The Witcher 3", games[0].Title)
	assert.NotNil(t, games[0].Genre)
	assert.NotNil(t, games[0].Developer)
	assert.Nil(t, games[0].Publisher)

	assert.Equal(t, "Cyberpunk 2077", games[1].Title)
	assert.Nil(t, games[1].Genre)
	assert.NotNil(t, games[1].Publisher)
	assert.Nil(t, games[1].Developer)
}

func TestListGamesBy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	witcher, err := f.store.Insert(ctx, &models.Game{Title: "The Witcher 3", PublisherID: &f.publisher})
	require.NoError(t, err)
	_, err = f.store.Insert(ctx, &models.Game{Title: "Doom"})
	require.NoError(t, err)

	games, err := f.store.ListGamesBy(ctx, models.RelationPublisher, f.publisher)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, witcher, games[0].ID)
	require.NotNil(t, games[0].Publisher)
	assert.Equal(t, "CD Projekt", games[0].Publisher.Name)

	games, err = f.store.ListGamesBy(ctx, models.RelationGenre, f.genre)
	require.NoError(t, err)
	assert.Empty(t, games)

	_, err = f.store.ListGamesBy(ctx, models.Relation("title"), 1)
	assert.Error(t, err)
}

func TestUpdateGameReplacesColumns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.store.Insert(ctx, &models.Game{
		Title:       "The Witcher 3",
		Description: ptr("Open world RPG"),
		GenreID:     &f.genre,
		PublisherID: &f.publisher,
		DeveloperID: &f.developer,
	})
	require.NoError(t, err)

	err = f.store.UpdateGame(ctx, &models.Game{ID: id, Title: "The Witcher 3: Wild Hunt", DeveloperID: &f.developer})
	require.NoError(t, err)

	game, found, err := f.store.FindGame(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "The Witcher 3: Wild Hunt", game.Title)
	assert.Nil(t, game.Description)
	assert.Nil(t, game.GenreID)
	assert.Nil(t, game.Genre)
	assert.Nil(t, game.PublisherID)
	assert.Nil(t, game.Publisher)
	require.NotNil(t, game.DeveloperID)
	assert.Equal(t, f.developer, *game.DeveloperID)
}

func TestUpdateGameMissingIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// absence wins over the invalid reference
	err := f.store.UpdateGame(ctx, &models.Game{ID: 77, Title: "Ghost", GenreID: ptr(uint64(999))})
	require.NoError(t, err)

	n, err := store.Count[models.Game](ctx, f.store)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateGameMissingReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.store.Insert(ctx, &models.Game{Title: "The Witcher 3", GenreID: &f.genre})
	require.NoError(t, err)

	err = f.store.UpdateGame(ctx, &models.Game{ID: id, Title: "Changed", GenreID: ptr(uint64(999))})
	assert.True(t, errors.Is(err, store.ErrReferentialViolation))

	game, _, err := f.store.FindGame(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "The Witcher 3", game.Title)
	require.NotNil(t, game.GenreID)
	assert.Equal(t, f.genre, *game.GenreID)
}

func TestRemoveGame(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.store.Insert(ctx, &models.Game{Title: "Doom"})
	require.NoError(t, err)

	require.NoError(t, f.store.RemoveGame(ctx, id))
	_, found, err := f.store.FindGame(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)

	// second removal and unknown ids are no-ops
	assert.NoError(t, f.store.RemoveGame(ctx, id))
	assert.NoError(t, f.store.RemoveGame(ctx, 12345))
}

func TestRemoveReferencedRowIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Insert(ctx, &models.Game{Title: "The Witcher 3", GenreID: &f.genre})
	require.NoError(t, err)

	err = store.Remove[models.Genre](ctx, f.store, f.genre)
	assert.True(t, errors.Is(err, store.ErrReferentialViolation), "%v", err)

	_, found, err := store.Find[models.Genre](ctx, f.store, f.genre)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestContextCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.store.ListGames(ctx)
	assert.Error(t, err)
}
