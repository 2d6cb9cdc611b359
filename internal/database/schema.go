package database

import (
	"github.com/glebarez/sqlite"
	"github.com/localnerve/gamesdb/internal/logging"
	"gorm.io/gorm"
)

// TableDDL is the CREATE statement of one table
type TableDDL struct {
	Name string
	SQL  string
}

// SQLiteSchema migrates the models into a scratch in-memory SQLite database
// and returns the DDL gorm generated, in creation order
func SQLiteSchema() ([]TableDDL, error) {
	db, err := gorm.Open(sqlite.Open(SQLiteDSN(":memory:", "_pragma=foreign_keys(1)")), &gorm.Config{
		Logger: logging.Gorm("silent"),
	})
	if err != nil {
		return nil, err
	}
	defer Close(db)

	// Auto-migrate to see what GORM creates
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	var tables []TableDDL
	err = db.Raw("SELECT name, sql FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid").
		Scan(&tables).Error
	return tables, err
}
