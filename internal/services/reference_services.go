package services

import (
	"context"

	"github.com/localnerve/gamesdb/internal/models"
	"github.com/localnerve/gamesdb/internal/store"
	"github.com/localnerve/gamesdb/internal/types"
)

// GenreService lists and creates genres. Genres are append-only.
type GenreService struct {
	store *store.Store
}

func NewGenreService(st *store.Store) *GenreService {
	return &GenreService{store: st}
}

func (s *GenreService) List(ctx context.Context) ([]types.GenreProjection, error) {
	genres, err := store.List[models.Genre](ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]types.GenreProjection, 0, len(genres))
	for _, g := range genres {
		out = append(out, types.GenreProjection{ID: g.ID, Name: g.Name})
	}
	return out, nil
}

func (s *GenreService) Create(ctx context.Context, req types.AddGenreRequest) (uint64, error) {
	if err := validateInput(req); err != nil {
		return 0, err
	}
	return s.store.Insert(ctx, &models.Genre{Name: req.Name})
}

// PublisherService lists and creates publishers
type PublisherService struct {
	store *store.Store
}

func NewPublisherService(st *store.Store) *PublisherService {
	return &PublisherService{store: st}
}

func (s *PublisherService) List(ctx context.Context) ([]types.PublisherProjection, error) {
	publishers, err := store.List[models.Publisher](ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]types.PublisherProjection, 0, len(publishers))
	for _, p := range publishers {
		out = append(out, types.PublisherProjection{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (s *PublisherService) Create(ctx context.Context, req types.AddPublisherRequest) (uint64, error) {
	if err := validateInput(req); err != nil {
		return 0, err
	}
	return s.store.Insert(ctx, &models.Publisher{Name: req.Name})
}

// DeveloperService lists and creates developers
type DeveloperService struct {
	store *store.Store
}

func NewDeveloperService(st *store.Store) *DeveloperService {
	return &DeveloperService{store: st}
}

func (s *DeveloperService) List(ctx context.Context) ([]types.DeveloperProjection, error) {
	developers, err := store.List[models.Developer](ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]types.DeveloperProjection, 0, len(developers))
	for _, d := range developers {
		out = append(out, types.DeveloperProjection{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (s *DeveloperService) Create(ctx context.Context, req types.AddDeveloperRequest) (uint64, error) {
	if err := validateInput(req); err != nil {
		return 0, err
	}
	return s.store.Insert(ctx, &models.Developer{Name: req.Name})
}
