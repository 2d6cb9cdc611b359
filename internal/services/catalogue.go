package services

import "github.com/localnerve/gamesdb/internal/store"

// Catalogue groups the services that share one store
type Catalogue struct {
	Games      *GameService
	Genres     *GenreService
	Publishers *PublisherService
	Developers *DeveloperService
}

// NewCatalogue wires every catalogue service to the given store
func NewCatalogue(st *store.Store) *Catalogue {
	return &Catalogue{
		Games:      NewGameService(st),
		Genres:     NewGenreService(st),
		Publishers: NewPublisherService(st),
		Developers: NewDeveloperService(st),
	}
}
