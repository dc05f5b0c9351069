package utils

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// DuplicateEntityError is returned when a name (or other unique column) is
// already taken, whether caught by the pre-write uniqueness check or by the
// store's unique index.
type DuplicateEntityError struct {
	Message string
}

func (e *DuplicateEntityError) Error() string {
	return e.Message
}

// EntityNotFoundError carries a human-readable label of the missing kind.
type EntityNotFoundError struct {
	Label string
}

func (e *EntityNotFoundError) Error() string {
	return e.Label + " not found"
}

// AlreadyDeletedError is raised when deleting a record already marked deleted.
type AlreadyDeletedError struct {
	Label string
}

func (e *AlreadyDeletedError) Error() string {
	return e.Label + " is already deleted"
}

type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// ValidationError holds field-level failures detected before any store work.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msg := "invalid input"
	for field, tag := range e.Fields {
		msg += "; " + field + ": " + tag
	}
	return msg
}

func NewDuplicateEntity(column string) error {
	return &DuplicateEntityError{Message: "duplicate " + column}
}

func NewEntityNotFound(label string) error {
	return &EntityNotFoundError{Label: label}
}

func NewInvalidOperation(message string) error {
	return &InvalidOperationError{Message: message}
}

func IsDuplicateEntity(err error) bool {
	var e *DuplicateEntityError
	return errors.As(err, &e)
}

func IsEntityNotFound(err error) bool {
	var e *EntityNotFoundError
	return errors.As(err, &e)
}

func IsAlreadyDeleted(err error) bool {
	var e *AlreadyDeletedError
	return errors.As(err, &e)
}

const mysqlDuplicateEntry = 1062

// TranslateStoreError remaps constraint violations reported by the store into
// the same DuplicateEntityError the uniqueness check raises, so callers see
// one error contract whether the duplicate was caught early or late. Other
// errors pass through untouched; constraint errors are never surfaced raw.
func TranslateStoreError(err error, column string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return NewDuplicateEntity(column)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return NewDuplicateEntity(column)
	}
	return err
}
