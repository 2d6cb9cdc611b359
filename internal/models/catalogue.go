package models

import (
	"time"

	"gorm.io/datatypes"
)

// Entity is a persisted record with a store-assigned identity
type Entity interface {
	Identity() uint64
}

// Reference names a row that must exist before an entity pointing at it is written
type Reference struct {
	Kind  string
	Model interface{}
	ID    uint64
}

// Referencing is implemented by entities that carry foreign keys
type Referencing interface {
	References() []Reference
}

// Relation is the foreign-key column on games that links to a reference entity
type Relation string

const (
	RelationGenre     Relation = "genre_id"
	RelationPublisher Relation = "publisher_id"
	RelationDeveloper Relation = "developer_id"
)

// GameMutableColumns are the columns replaced by a full game update
var GameMutableColumns = []string{
	"title",
	"description",
	"release_date",
	"genre_id",
	"publisher_id",
	"developer_id",
}

// Game represents a video game. Relations are resolved by preloading, never stored back.
type Game struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"size:200;not null;check:chk_games_title,title <> ''"`
	Description *string `gorm:"type:text"`
	ReleaseDate *datatypes.Date
	GenreID     *uint64    `gorm:"index"`
	Genre       *Genre     `gorm:"constraint:OnDelete:NO ACTION"`
	PublisherID *uint64    `gorm:"index"`
	Publisher   *Publisher `gorm:"constraint:OnDelete:NO ACTION"`
	DeveloperID *uint64    `gorm:"index"`
	Developer   *Developer `gorm:"constraint:OnDelete:NO ACTION"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Genre is reference data classifying games (RPG, FPS, ...)
type Genre struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null;check:chk_genres_name,name <> ''"`
	CreatedAt time.Time
}

// Publisher publishes games
type Publisher struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:200;not null;check:chk_publishers_name,name <> ''"`
	CreatedAt time.Time
}

// Developer is the studio that made a game
type Developer struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:200;not null;check:chk_developers_name,name <> ''"`
	CreatedAt time.Time
}

// Platform is reference data not yet associated with games
type Platform struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null;check:chk_platforms_name,name <> ''"`
	CreatedAt time.Time
}

// TableName overrides the table name for Game
func (Game) TableName() string {
	return "games"
}

// TableName overrides the table name for Genre
func (Genre) TableName() string {
	return "genres"
}

// TableName overrides the table name for Publisher
func (Publisher) TableName() string {
	return "publishers"
}

// TableName overrides the table name for Developer
func (Developer) TableName() string {
	return "developers"
}

// TableName overrides the table name for Platform
func (Platform) TableName() string {
	return "platforms"
}

func (g *Game) Identity() uint64      { return g.ID }
func (g *Genre) Identity() uint64     { return g.ID }
func (p *Publisher) Identity() uint64 { return p.ID }
func (d *Developer) Identity() uint64 { return d.ID }
func (p *Platform) Identity() uint64  { return p.ID }

// References lists the genre, publisher and developer rows the game points at
func (g *Game) References() []Reference {
	var refs []Reference
	if g.GenreID != nil {
		refs = append(refs, Reference{Kind: "genre", Model: &Genre{}, ID: *g.GenreID})
	}
	if g.PublisherID != nil {
		refs = append(refs, Reference{Kind: "publisher", Model: &Publisher{}, ID: *g.PublisherID})
	}
	if g.DeveloperID != nil {
		refs = append(refs, Reference{Kind: "developer", Model: &Developer{}, ID: *g.DeveloperID})
	}
	return refs
}

// All lists every model for migration, reference tables first
func All() []interface{} {
	return []interface{}{
		&Genre{},
		&Publisher{},
		&Developer{},
		&Platform{},
		&Game{},
	}
}
