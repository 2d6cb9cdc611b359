package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrReferentialViolation is returned when a write names a genre, publisher or developer that does not exist
	ErrReferentialViolation = errors.New("referential violation")

	// ErrConstraintViolation is returned when a required field is empty or exceeds its bound
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStoreUnavailable is returned when the database cannot be reached
	ErrStoreUnavailable = errors.New("store unavailable")
)

// translate maps driver and gorm errors onto the catalogue error taxonomy
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrReferentialViolation),
		errors.Is(err, ErrConstraintViolation),
		errors.Is(err, ErrStoreUnavailable):
		return err
	case errors.Is(err, gorm.ErrForeignKeyViolated), violates(err, "foreign key constraint"):
		return fmt.Errorf("%w: %w", ErrReferentialViolation, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated), violates(err, "check constraint"):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case unavailable(err):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

// violates matches constraint failures the dialect did not translate
func violates(err error, constraint string) bool {
	return strings.Contains(strings.ToLower(err.Error()), constraint)
}

func unavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, gorm.ErrInvalidDB) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// database/sql does not export this one
	return strings.Contains(err.Error(), "sql: database is closed")
}
