package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-Id"

	// LocalRequestID is the fiber.Ctx Locals key holding the request id
	LocalRequestID = "requestId"

	// LocalAPIVersion is the fiber.Ctx Locals key holding the requested API version
	LocalAPIVersion = "apiVersion"
)

// RequestContext assigns a request id (reusing the caller's X-Request-Id when present)
// and records the X-Api-Version header
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Locals(LocalRequestID, requestID)

		version := c.Get("X-Api-Version", "1.0.0")

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = "1.0.0"
		}
		c.Locals(LocalAPIVersion, version)

		return c.Next()
	}
}

// RequestID returns the id assigned by RequestContext, or "" outside it
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}
