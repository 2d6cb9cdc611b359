// common.go
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
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gamesdb/internal/middleware"
	"github.com/localnerve/gamesdb/internal/store"
	"github.com/localnerve/gamesdb/internal/types"
	"github.com/localnerve/gamesdb/internal/utils"
	"github.com/sirupsen/logrus"
)

// Error types reported in the response envelope
const (
	ErrTypeValidation  = "data.validation.input"
	ErrTypeReferential = "data.validation.reference"
	ErrTypeUnavailable = "data.unavailable"
)

// parseID reads the :id route parameter as a positive integer
func parseID(c *fiber.Ctx) (uint64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid id",
			Type:    ErrTypeValidation,
		}
	}
	return uint64(id), nil
}

// parseBody decodes the JSON request body into out
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid input",
			Type:    ErrTypeValidation,
		}
	}
	return nil
}

// failure maps a catalogue error onto its HTTP status and writes the error envelope
func failure(c *fiber.Ctx, err error, operation string) error {
	status, errorType, message := fiber.StatusInternalServerError, operation, err.Error()

	switch {
	case errors.Is(err, store.ErrConstraintViolation):
		status, errorType = fiber.StatusBadRequest, ErrTypeValidation
	case errors.Is(err, store.ErrReferentialViolation):
		status, errorType = fiber.StatusUnprocessableEntity, ErrTypeReferential
	case errors.Is(err, store.ErrStoreUnavailable):
		status, errorType, message = fiber.StatusServiceUnavailable, ErrTypeUnavailable, "Service unavailable"
	}

	entry := logrus.WithFields(logrus.Fields{
		"operation": operation,
		"requestId": middleware.RequestID(c),
		"status":    status,
	}).WithError(err)
	if status >= fiber.StatusInternalServerError {
		entry.Error("Catalogue operation failed")
	} else {
		entry.Info("Catalogue operation rejected")
	}

	return utils.ErrorResponse(c, message, status, errorType)
}

// ErrorHandler renders errors returned from handlers and middleware in the standard envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code, message, errorType = customErr.Code, customErr.Message, customErr.Type
	case errors.As(err, &fiberErr):
		code, message = fiberErr.Code, fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"requestId": middleware.RequestID(c),
			"url":       c.OriginalURL(),
		}).WithError(err).Error("Request failed")
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

// NotFound is the catch-all for unmatched routes
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
