package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/localnerve/gamesdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// GameRelations are the associations resolved on every game read
var GameRelations = []string{"Genre", "Publisher", "Developer"}

// Store is the persistence layer for the catalogue. It owns identity assignment,
// foreign key checks and relation resolution.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an open gorm connection
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection for health checks and tooling
func (s *Store) DB() *gorm.DB {
	return s.db
}

// reader is a context bound session that does not log record-not-found noise
func (s *Store) reader(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)})
}

// Insert verifies the rows an entity references, then creates it and returns the assigned id.
// Nothing is written when a referenced row is missing.
func (s *Store) Insert(ctx context.Context, entity models.Entity) (uint64, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := verifyReferences(tx, entity); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(entity).Error
	})
	if err != nil {
		return 0, translate(err)
	}
	return entity.Identity(), nil
}

// Find loads a single row by id. A missing row is reported as found == false with no error.
func Find[T any](ctx context.Context, s *Store, id uint64, preloads ...string) (*T, bool, error) {
	query := s.reader(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}

	var out T
	if err := query.First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, translate(err)
	}
	return &out, true, nil
}

// List loads every row of a kind in id order
func List[T any](ctx context.Context, s *Store) ([]T, error) {
	var out []T
	if err := s.reader(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Count returns the number of rows of a kind
func Count[T any](ctx context.Context, s *Store) (int64, error) {
	var n int64
	if err := s.reader(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// Remove deletes a row by id. Removing a missing row is a no-op.
func Remove[T any](ctx context.Context, s *Store, id uint64) error {
	return translate(s.db.WithContext(ctx).Delete(new(T), id).Error)
}

// FindGame loads a game with its genre, publisher and developer
func (s *Store) FindGame(ctx context.Context, id uint64) (*models.Game, bool, error) {
	return Find[models.Game](ctx, s, id, GameRelations...)
}

// ListGames loads every game with relations resolved. A foreign key whose row is gone
// leaves the relation nil.
func (s *Store) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := s.preloadGames(s.reader(ctx)).
		Clauses(hints.CommentBefore("select", "list_games")).
		Order("id").
		Find(&games).Error
	if err != nil {
		return nil, translate(err)
	}
	return games, nil
}

// ListGamesBy returns the games that reference the given genre, publisher or developer
func (s *Store) ListGamesBy(ctx context.Context, relation models.Relation, id uint64) ([]models.Game, error) {
	switch relation {
	case models.RelationGenre, models.RelationPublisher, models.RelationDeveloper:
	default:
		return nil, fmt.Errorf("unknown game relation: %q", relation)
	}

	var games []models.Game
	err := s.preloadGames(s.reader(ctx)).
		Clauses(hints.CommentBefore("select", "list_games_by_"+string(relation))).
		Where(clause.Eq{Column: clause.Column{Name: string(relation)}, Value: id}).
		Order("id").
		Find(&games).Error
	if err != nil {
		return nil, translate(err)
	}
	return games, nil
}

// UpdateGame replaces the mutable columns of an existing game, including clearing foreign keys.
// Updating a game that does not exist is a no-op; the existence check runs before the reference check.
func (s *Store) UpdateGame(ctx context.Context, game *models.Game) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Game
		err := lockForUpdate(tx).Select("id").Where("id = ?", game.ID).Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := verifyReferences(tx, game); err != nil {
			return err
		}

		game.UpdatedAt = time.Now()
		columns := append(slices.Clone(models.GameMutableColumns), "updated_at")
		return tx.Model(game).Select(columns).Updates(game).Error
	})
	return translate(err)
}

// RemoveGame deletes a game if present
func (s *Store) RemoveGame(ctx context.Context, id uint64) error {
	return Remove[models.Game](ctx, s, id)
}

func (s *Store) preloadGames(query *gorm.DB) *gorm.DB {
	for _, rel := range GameRelations {
		query = query.Preload(rel)
	}
	return query
}

// verifyReferences checks that every row an entity points at exists
func verifyReferences(tx *gorm.DB, entity models.Entity) error {
	referencing, ok := entity.(models.Referencing)
	if !ok {
		return nil
	}

	for _, ref := range referencing.References() {
		var n int64
		if err := tx.Model(ref.Model).Where("id = ?", ref.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s %d does not exist", ErrReferentialViolation, ref.Kind, ref.ID)
		}
	}
	return nil
}

// lockForUpdate adds a row lock where the dialect supports the FOR UPDATE clause
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlserver" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
