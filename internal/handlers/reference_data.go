// reference_data.go
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
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gamesdb/internal/types"
	"github.com/localnerve/gamesdb/internal/utils"
)

// ReferenceCatalogue is a list and create service for one kind of reference data
type ReferenceCatalogue[Req any, Proj any] interface {
	List(ctx context.Context) ([]Proj, error)
	Create(ctx context.Context, req Req) (uint64, error)
}

// ReferenceHandler serves the list and create routes shared by genres, publishers and developers
type ReferenceHandler[Req any, Proj any] struct {
	Service ReferenceCatalogue[Req, Proj]
	// Kind names the entity in error types, e.g. "Genre"
	Kind string
}

// List handles GET on the collection
func (h *ReferenceHandler[Req, Proj]) List(c *fiber.Ctx) error {
	items, err := h.Service.List(c.UserContext())
	if err != nil {
		return failure(c, err, "list"+h.Kind+"s")
	}
	return utils.SuccessResponse(c, items, fiber.StatusOK)
}

// Create handles POST on the collection
func (h *ReferenceHandler[Req, Proj]) Create(c *fiber.Ctx) error {
	var req Req
	if err := parseBody(c, &req); err != nil {
		return err
	}

	id, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return failure(c, err, "create"+h.Kind)
	}
	return utils.CreatedResponse(c, id)
}

type (
	GenreHandler     = ReferenceHandler[types.AddGenreRequest, types.GenreProjection]
	PublisherHandler = ReferenceHandler[types.AddPublisherRequest, types.PublisherProjection]
	DeveloperHandler = ReferenceHandler[types.AddDeveloperRequest, types.DeveloperProjection]
)

// ListGenres godoc
// @Summary List genres
// @Tags Genres
// @Produce json
// @Success 200 {array} types.GenreProjection
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /genres [get]
func ListGenres(h *GenreHandler) fiber.Handler { return h.List }

// CreateGenre godoc
// @Summary Create a genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param body body types.AddGenreRequest true "Genre to create"
// @Success 201 {object} types.CreatedResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /genres [post]
func CreateGenre(h *GenreHandler) fiber.Handler { return h.Create }

// ListPublishers godoc
// @Summary List publishers
// @Tags Publishers
// @Produce json
// @Success 200 {array} types.PublisherProjection
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /publishers [get]
func ListPublishers(h *PublisherHandler) fiber.Handler { return h.List }

// CreatePublisher godoc
// @Summary Create a publisher
// @Tags Publishers
// @Accept json
// @Produce json
// @Param body body types.AddPublisherRequest true "Publisher to create"
// @Success 201 {object} types.CreatedResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /publishers [post]
func CreatePublisher(h *PublisherHandler) fiber.Handler { return h.Create }

// ListDevelopers godoc
// @Summary List developers
// @Tags Developers
// @Produce json
// @Success 200 {array} types.DeveloperProjection
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /developers [get]
func ListDevelopers(h *DeveloperHandler) fiber.Handler { return h.List }

// CreateDeveloper godoc
// @Summary Create a developer
// @Tags Developers
// @Accept json
// @Produce json
// @Param body body types.AddDeveloperRequest true "Developer to create"
// @Success 201 {object} types.CreatedResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /developers [post]
func CreateDeveloper(h *DeveloperHandler) fiber.Handler { return h.Create }
