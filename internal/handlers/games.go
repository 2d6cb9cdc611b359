// games.go
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
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gamesdb/internal/types"
	"github.com/localnerve/gamesdb/internal/utils"
)

// GameCatalogue is the game service as seen by the HTTP layer
type GameCatalogue interface {
	List(ctx context.Context) ([]types.GameProjection, error)
	Get(ctx context.Context, id uint64) (types.GameProjection, bool, error)
	Create(ctx context.Context, req types.AddGameRequest) (uint64, error)
	Update(ctx context.Context, id uint64, req types.UpdateGameRequest) error
	Delete(ctx context.Context, id uint64) error
}

// GameHandler handles the /games routes
type GameHandler struct {
	Games GameCatalogue
}

// ListGames handles GET /api/games
// @Summary List games
// @Description List every game with its genre, publisher and developer
// @Tags Games
// @Produce json
// @Success 200 {array} types.GameProjection
// @Failure 500 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /games [get]
func (h *GameHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.Games.List(c.UserContext())
	if err != nil {
		return failure(c, err, "listGames")
	}
	return utils.SuccessResponse(c, games, fiber.StatusOK)
}

// GetGame handles GET /api/games/:id
// @Summary Get a game
// @Tags Games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} types.GameProjection
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	game, found, err := h.Games.Get(c.UserContext(), id)
	if err != nil {
		return failure(c, err, "getGame")
	}
	if !found {
		return utils.NotFoundResponse(c, fmt.Sprintf("Game %d not found", id))
	}
	return utils.SuccessResponse(c, game, fiber.StatusOK)
}

// CreateGame handles POST /api/games
// @Summary Create a game
// @Description Genre, publisher and developer ids are optional but must exist when given
// @Tags Games
// @Accept json
// @Produce json
// @Param body body types.AddGameRequest true "Game to create"
// @Success 201 {object} types.CreatedResponse
// @Header 201 {string} Location "URL of the created game"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /games [post]
func (h *GameHandler) CreateGame(c *fiber.Ctx) error {
	var req types.AddGameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	id, err := h.Games.Create(c.UserContext(), req)
	if err != nil {
		return failure(c, err, "createGame")
	}
	return utils.CreatedResponse(c, id)
}

// UpdateGame handles PUT /api/games/:id
// @Summary Replace a game
// @Description Replaces every field. Omitted optional fields are cleared. Unknown ids are ignored.
// @Tags Games
// @Accept json
// @Param id path int true "Game ID"
// @Param body body types.UpdateGameRequest true "Replacement fields"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.UpdateGameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.Games.Update(c.UserContext(), id, req); err != nil {
		return failure(c, err, "updateGame")
	}
	return utils.NoContentResponse(c)
}

// DeleteGame handles DELETE /api/games/:id
// @Summary Delete a game
// @Description Deleting an unknown id succeeds
// @Tags Games
// @Param id path int true "Game ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Games.Delete(c.UserContext(), id); err != nil {
		return failure(c, err, "deleteGame")
	}
	return utils.NoContentResponse(c)
}
