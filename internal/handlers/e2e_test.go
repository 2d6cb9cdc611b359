package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/localnerve/gamesdb/internal/testenv"
	"github.com/localnerve/gamesdb/internal/types"
)

// TestE2E drives the containerised service over HTTP. Set GAMESDB_E2E=true and DB_IMAGE to run it.
func TestE2E(t *testing.T) {
	testenv.SkipWithoutContainers(t)
	if os.Getenv("GAMESDB_E2E") != "true" {
		t.Skip("GAMESDB_E2E is not set")
	}

	tc, err := testenv.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start containers: %v", err)
	}
	defer tc.Terminate(t)

	post := func(path string, body interface{}) uint64 {
		raw, _ := json.Marshal(body)
		resp, err := http.Post(tc.BaseURL+path, "application/json", bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("POST %s failed: %v", path, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("POST %s: expected status 201, got %d", path, resp.StatusCode)
		}
		var created types.CreatedResponse
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return created.ID
	}

	genre := post("/api/genres", map[string]string{"name": "RPG"})
	id := post("/api/games", map[string]interface{}{"title": "The Witcher 3", "genreId": genre})

	resp, err := http.Get(fmt.Sprintf("%s/api/games/%d", tc.BaseURL, id))
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var game types.GameProjection
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		t.Fatalf("Failed to decode game: %v", err)
	}
	if game.Genre == nil || game.Genre.Name != "RPG" {
		t.Errorf("Expected genre RPG, got %+v", game.Genre)
	}

	metrics, err := http.Get(tc.BaseURL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	metrics.Body.Close()
	if metrics.StatusCode != http.StatusOK {
		t.Errorf("Expected /metrics status 200, got %d", metrics.StatusCode)
	}
}
