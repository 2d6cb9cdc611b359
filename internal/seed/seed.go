// Package seed loads a starter catalogue through the catalogue services.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/localnerve/gamesdb/internal/models"
	"github.com/localnerve/gamesdb/internal/services"
	"github.com/localnerve/gamesdb/internal/store"
	"github.com/localnerve/gamesdb/internal/types"
	"github.com/sirupsen/logrus"
)

// ErrNotEmpty is returned when the catalogue already holds games
var ErrNotEmpty = errors.New("catalogue already has games")

// Catalogue is the seed document. Games name their relations rather than using ids.
type Catalogue struct {
	Genres     []string `json:"genres"`
	Publishers []string `json:"publishers"`
	Developers []string `json:"developers"`
	Platforms  []string `json:"platforms"`
	Games      []Game   `json:"games"`
}

// Game is a seed game
type Game struct {
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	ReleaseDate *types.Date `json:"releaseDate"`
	Genre       string      `json:"genre"`
	Publisher   string      `json:"publisher"`
	Developer   string      `json:"developer"`
}

// Result counts the rows created
type Result struct {
	Genres     int
	Publishers int
	Developers int
	Platforms  int
	Games      int
}

// Parse decodes a seed document
func Parse(raw []byte) (*Catalogue, error) {
	var c Catalogue
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("invalid seed catalogue: %w", err)
	}
	return &c, nil
}

// Apply creates everything in the seed document. Reference data goes through the
// services first so game relations can be resolved by name. It refuses to run when
// games already exist.
func Apply(ctx context.Context, cat *services.Catalogue, st *store.Store, seed *Catalogue) (Result, error) {
	var result Result

	n, err := store.Count[models.Game](ctx, st)
	if err != nil {
		return result, err
	}
	if n > 0 {
		return result, fmt.Errorf("%w (%d games)", ErrNotEmpty, n)
	}

	genres := make(map[string]uint64, len(seed.Genres))
	for _, name := range seed.Genres {
		id, err := cat.Genres.Create(ctx, types.AddGenreRequest{Name: name})
		if err != nil {
			return result, fmt.Errorf("genre %q: %w", name, err)
		}
		genres[name] = id
		result.Genres++
	}

	publishers := make(map[string]uint64, len(seed.Publishers))
	for _, name := range seed.Publishers {
		id, err := cat.Publishers.Create(ctx, types.AddPublisherRequest{Name: name})
		if err != nil {
			return result, fmt.Errorf("publisher %q: %w", name, err)
		}
		publishers[name] = id
		result.Publishers++
	}

	developers := make(map[string]uint64, len(seed.Developers))
	for _, name := range seed.Developers {
		id, err := cat.Developers.Create(ctx, types.AddDeveloperRequest{Name: name})
		if err != nil {
			return result, fmt.Errorf("developer %q: %w", name, err)
		}
		developers[name] = id
		result.Developers++
	}

	// platforms have no service
	for _, name := range seed.Platforms {
		if _, err := st.Insert(ctx, &models.Platform{Name: name}); err != nil {
			return result, fmt.Errorf("platform %q: %w", name, err)
		}
		result.Platforms++
	}

	for _, g := range seed.Games {
		req := types.AddGameRequest{
			Title:       g.Title,
			Description: g.Description,
			ReleaseDate: g.ReleaseDate,
		}
		if req.GenreID, err = lookup(genres, "genre", g.Genre); err != nil {
			return result, fmt.Errorf("game %q: %w", g.Title, err)
		}
		if req.PublisherID, err = lookup(publishers, "publisher", g.Publisher); err != nil {
			return result, fmt.Errorf("game %q: %w", g.Title, err)
		}
		if req.DeveloperID, err = lookup(developers, "developer", g.Developer); err != nil {
			return result, fmt.Errorf("game %q: %w", g.Title, err)
		}

		id, err := cat.Games.Create(ctx, req)
		if err != nil {
			return result, fmt.Errorf("game %q: %w", g.Title, err)
		}
		logrus.WithFields(logrus.Fields{"id": id, "title": g.Title}).Debug("Seeded game")
		result.Games++
	}

	return result, nil
}

// lookup resolves a relation name. An empty name means no relation.
func lookup(ids map[string]uint64, kind, name string) (*uint64, error) {
	if name == "" {
		return nil, nil
	}
	id, ok := ids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q is not in the seed", store.ErrReferentialViolation, kind, name)
	}
	return &id, nil
}
