// Package store is the data-access boundary between the HTTP handlers and the
// relational database. Every operation is a single independent query or
// statement; there are no cross-operation transactions and no cached state.
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports that the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalid reports a payload that fails field or enum validation.
	ErrInvalid = errors.New("invalid input")
)

const (
	defaultIncidentLimit = 50
	defaultEventLimit    = 100
)

// Storage exposes typed entity operations over a GORM connection.
type Storage struct {
	db *gorm.DB
}

// New returns a Storage backed by the given database connection.
func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// translate maps gorm errors to the store's error taxonomy.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
