package services

import (
	"context"

	"github.com/localnerve/gamesdb/internal/store"
	"github.com/localnerve/gamesdb/internal/types"
)

// GameService is the game catalogue: full CRUD over games and their associations
type GameService struct {
	store *store.Store
}

// NewGameService creates a GameService over the given store
func NewGameService(st *store.Store) *GameService {
	return &GameService{store: st}
}

// List returns every game with its genre, publisher and developer, in store order
func (s *GameService) List(ctx context.Context) ([]types.GameProjection, error) {
	games, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]types.GameProjection, 0, len(games))
	for _, g := range games {
		out = append(out, ToGameProjection(g))
	}
	return out, nil
}

// Get returns a single game. found is false when no game has the id.
func (s *GameService) Get(ctx context.Context, id uint64) (types.GameProjection, bool, error) {
	game, found, err := s.store.FindGame(ctx, id)
	if err != nil || !found {
		return types.GameProjection{}, false, err
	}
	return ToGameProjection(*game), true, nil
}

// Create validates the request and stores a new game, returning its id.
// Naming a genre, publisher or developer that does not exist fails with store.ErrReferentialViolation.
func (s *GameService) Create(ctx context.Context, req types.AddGameRequest) (uint64, error) {
	if err := validateInput(req); err != nil {
		return 0, err
	}
	return s.store.Insert(ctx, toGame(0, addGameFields(req)))
}

// Update replaces every mutable field of a game, foreign keys included.
// The request is validated first; an unknown id is then a silent no-op.
func (s *GameService) Update(ctx context.Context, id uint64, req types.UpdateGameRequest) error {
	if err := validateInput(req); err != nil {
		return err
	}
	return s.store.UpdateGame(ctx, toGame(id, updateGameFields(req)))
}

// Delete removes a game if it exists
func (s *GameService) Delete(ctx context.Context, id uint64) error {
	return s.store.RemoveGame(ctx, id)
}
