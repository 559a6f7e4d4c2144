package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
)

// Sentinel errors returned by every repository
var (
	ErrNotFound   = errors.New("record not found")
	ErrForeignKey = errors.New("referenced record does not exist")
	ErrDuplicate  = errors.New("record already exists")
)

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case sqlgraph.IsForeignKeyConstraintError(err):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case sqlgraph.IsUniqueConstraintError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
