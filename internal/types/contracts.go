// contracts.go
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

package types

// AddGameRequest is the input for creating a game. The id is assigned by the store.
type AddGameRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
	ReleaseDate *Date   `json:"releaseDate,omitempty" swaggertype:"string" example:"2015-05-19"`
	GenreID     *uint64 `json:"genreId,omitempty"`
	PublisherID *uint64 `json:"publisherId,omitempty"`
	DeveloperID *uint64 `json:"developerId,omitempty"`
}

// UpdateGameRequest replaces every mutable field of a game. A nil foreign key clears the association.
type UpdateGameRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
	ReleaseDate *Date   `json:"releaseDate,omitempty" swaggertype:"string" example:"2015-05-19"`
	GenreID     *uint64 `json:"genreId,omitempty"`
	PublisherID *uint64 `json:"publisherId,omitempty"`
	DeveloperID *uint64 `json:"developerId,omitempty"`
}

// GameProjection is the externally visible game. Absent relations render as null.
type GameProjection struct {
	ID          uint64               `json:"id"`
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	ReleaseDate *Date                `json:"releaseDate" swaggertype:"string" example:"2015-05-19"`
	Genre       *GenreProjection     `json:"genre"`
	Publisher   *PublisherProjection `json:"publisher"`
	Developer   *DeveloperProjection `json:"developer"`
}

// AddGenreRequest is the input for creating a genre
type AddGenreRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// AddPublisherRequest is the input for creating a publisher
type AddPublisherRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// AddDeveloperRequest is the input for creating a developer
type AddDeveloperRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type GenreProjection struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type PublisherProjection struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type DeveloperProjection struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// CreatedResponse carries the identity assigned to a new entity
type CreatedResponse struct {
	ID uint64 `json:"id"`
}
