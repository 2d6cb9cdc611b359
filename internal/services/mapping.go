package services

import (
	"time"

	"github.com/localnerve/gamesdb/internal/models"
	"github.com/localnerve/gamesdb/internal/types"
	"gorm.io/datatypes"
)

// gameFields is the shape shared by the add and update requests
type gameFields struct {
	Title       string
	Description *string
	ReleaseDate *types.Date
	GenreID     *uint64
	PublisherID *uint64
	DeveloperID *uint64
}

func addGameFields(req types.AddGameRequest) gameFields {
	return gameFields(req)
}

func updateGameFields(req types.UpdateGameRequest) gameFields {
	return gameFields(req)
}

// toGame builds a game entity from request fields. Pointer fields are copied.
func toGame(id uint64, f gameFields) *models.Game {
	return &models.Game{
		ID:          id,
		Title:       f.Title,
		Description: clone(f.Description),
		ReleaseDate: toDatatypesDate(f.ReleaseDate),
		GenreID:     clone(f.GenreID),
		PublisherID: clone(f.PublisherID),
		DeveloperID: clone(f.DeveloperID),
	}
}

// ToGameProjection maps a stored game to its response shape. Missing relations map to nil.
func ToGameProjection(g models.Game) types.GameProjection {
	p := types.GameProjection{
		ID:          g.ID,
		Title:       g.Title,
		Description: clone(g.Description),
		ReleaseDate: toTypesDate(g.ReleaseDate),
	}
	if g.Genre != nil {
		p.Genre = &types.GenreProjection{ID: g.Genre.ID, Name: g.Genre.Name}
	}
	if g.Publisher != nil {
		p.Publisher = &types.PublisherProjection{ID: g.Publisher.ID, Name: g.Publisher.Name}
	}
	if g.Developer != nil {
		p.Developer = &types.DeveloperProjection{ID: g.Developer.ID, Name: g.Developer.Name}
	}
	return p
}

func toDatatypesDate(d *types.Date) *datatypes.Date {
	if d == nil {
		return nil
	}
	out := datatypes.Date(types.DateOf(d.Time()).Time())
	return &out
}

func toTypesDate(d *datatypes.Date) *types.Date {
	if d == nil {
		return nil
	}
	// the calendar day as stored, whatever zone the driver scanned it in
	y, m, day := time.Time(*d).Date()
	out := types.NewDate(y, m, day)
	return &out
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
