// routes.go
//
// GamesDB, a video games catalogue data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of gamesdb.
// gamesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// gamesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with gamesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gamesdb/internal/services"
)

// Mount registers the catalogue routes on r, normally the /api group
func Mount(r fiber.Router, cat *services.Catalogue) {
	games := &GameHandler{Games: cat.Games}
	genres := &GenreHandler{Service: cat.Genres, Kind: "Genre"}
	publishers := &PublisherHandler{Service: cat.Publishers, Kind: "Publisher"}
	developers := &DeveloperHandler{Service: cat.Developers, Kind: "Developer"}

	r.Get("/games", games.ListGames)
	r.Get("/games/:id", games.GetGame)
	r.Post("/games", games.CreateGame)
	r.Put("/games/:id", games.UpdateGame)
	r.Delete("/games/:id", games.DeleteGame)

	r.Get("/genres", ListGenres(genres))
	r.Post("/genres", CreateGenre(genres))

	r.Get("/publishers", ListPublishers(publishers))
	r.Post("/publishers", CreatePublisher(publishers))

	r.Get("/developers", ListDevelopers(developers))
	r.Post("/developers", CreateDeveloper(developers))
}
