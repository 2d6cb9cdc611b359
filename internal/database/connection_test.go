package database

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/gamesdb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t,
		"games.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		SQLiteDSN("games.db", "_pragma=foreign_keys(1)", "_pragma=busy_timeout(5000)"))

	assert.Equal(t,
		"file::memory:?_pragma=foreign_keys(1)",
		SQLiteDSN(":memory:", "_pragma=foreign_keys(1)"))

	// parameters already present are kept as given
	assert.Equal(t,
		"games.db?_pragma=foreign_keys(0)&_pragma=busy_timeout(5000)",
		SQLiteDSN("games.db?_pragma=foreign_keys(0)", "_pragma=foreign_keys(1)", "_pragma=busy_timeout(5000)"))

	assert.Equal(t,
		"games.db?_foreign_keys=1",
		SQLiteDSN("games.db", "_foreign_keys=1"))
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(&config.Config{
		DBUser:     "games",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "3306",
		DBDatabase: "catalogue",
	})
	assert.Contains(t, dsn, "games:secret@tcp(db:3306)/catalogue?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestDialector(t *testing.T) {
	for _, dbType := range []string{"mysql", "mariadb", "postgres", "sqlite", "sqlite3", "sqlserver"} {
		d, err := Dialector(&config.Config{DBType: dbType, DBHost: "localhost", DBPort: "1", DBDatabase: "games"})
		require.NoError(t, err, dbType)
		assert.NotNil(t, d, dbType)
	}

	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.EqualError(t, err, "unsupported database type: oracle")
}

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "games.db"),
		DBConnectionLimit: 2,
		DBLogLevel:        "silent",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"games", "genres", "publishers", "developers", "platforms"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var foreignKeys int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	assert.Equal(t, 1, foreignKeys)

	// AutoMigrate is repeatable
	require.NoError(t, AutoMigrate(db))
}

func TestSQLiteSchema(t *testing.T) {
	tables, err := SQLiteSchema()
	require.NoError(t, err)

	ddl := map[string]string{}
	for _, table := range tables {
		ddl[table.Name] = table.SQL
	}
	require.Contains(t, ddl, "games")
	assert.Contains(t, ddl["games"], "fk_games_genre")
	assert.Contains(t, ddl["games"], "REFERENCES `genres`")
	assert.Contains(t, ddl["games"], "chk_games_title")
	assert.Contains(t, ddl, "platforms")
}
