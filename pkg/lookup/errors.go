package lookup

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error carries a machine code and HTTP status alongside the message so
// handlers can map storage failures straight to responses.
type Error struct {
	Code    string
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeDuplicate  = "DUPLICATE_ERROR"
	CodeForeignKey = "FOREIGN_KEY_CONSTRAINT"
	CodeDatabase   = "DATABASE_ERROR"
)

func validationError(message string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

func notFoundError(entity string, id int64) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("%s with ID %d not found", entity, id)}
}

// translateError promotes Postgres constraint violations to their API
// shapes. 23505 is a duplicate name, 23503 means products still
// reference the row. Everything else is a plain database error.
func translateError(entity, name string, err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &Error{
				Code:    CodeDuplicate,
				Status:  http.StatusConflict,
				Message: fmt.Sprintf("%s %q already exists", entity, name),
				cause:   err,
			}
		case pgerrcode.ForeignKeyViolation:
			return &Error{
				Code:    CodeForeignKey,
				Status:  http.StatusConflict,
				Message: fmt.Sprintf("Cannot delete %s: it is referenced by existing products", entity),
				cause:   err,
			}
		}
	}
	return &Error{
		Code:    CodeDatabase,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("%s storage error: %v", entity, err),
		cause:   err,
	}
}
