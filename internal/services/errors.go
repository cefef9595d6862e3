package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound marks lookups that matched no row. Handlers translate it into
// a 404 for their entity.
var ErrNotFound = errors.New("not found")

// ValidationError carries a client-facing message for a request that was
// well-formed but semantically invalid. Handlers translate it into a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func personMissing(id int64) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("person %d does not exist", id)}
}

const foreignKeyViolation = "23503"

// isForeignKeyViolation catches writes that race a person delete: the
// existence check passed but the constraint still rejected the row.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
