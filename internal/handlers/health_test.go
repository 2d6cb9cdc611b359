package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gamesdb/internal/config"
	"github.com/localnerve/gamesdb/internal/database"
	"github.com/localnerve/gamesdb/internal/handlers"
	"github.com/localnerve/gamesdb/internal/testenv"
)

// TestHealth tests the GET /healthz endpoint against a live and a closed database
func TestHealth(t *testing.T) {
	db := testenv.OpenSQLite(t)
	h := &handlers.HealthHandler{Config: &config.Config{DBType: "sqlite"}, DB: db}

	app := fiber.New()
	app.Get("/healthz", h.Health)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	if err := database.Close(db); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/healthz", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", resp.StatusCode)
	}
}
