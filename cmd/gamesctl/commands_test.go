package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, "schema")
	require.NoError(t, err)
	for _, table := range []string{"genres", "publishers", "developers", "platforms", "games"} {
		assert.Contains(t, out, "=== Table: "+table+" ===")
	}
}

func TestMigrateAndSeedCommands(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", filepath.Join(t.TempDir(), "games.db"))
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("LOG_LEVEL", "error")

	_, err := run(t, "migrate")
	require.NoError(t, err)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 5 genres, 4 publishers, 4 developers, 4 platforms, 7 games")

	_, err = run(t, "seed")
	assert.ErrorContains(t, err, "catalogue already has games")
}

func TestSeedMissingFile(t *testing.T) {
	_, err := run(t, "seed", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
