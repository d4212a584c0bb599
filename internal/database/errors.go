package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the API cares about.
const (
	CodeInvalidTextRepresentation pq.ErrorCode = "22P02"
	CodeNumericValueOutOfRange    pq.ErrorCode = "22003"
	CodeForeignKeyViolation       pq.ErrorCode = "23503"
)

// castOutOfRangePrefix starts the 22003 message Postgres raises when a text
// parameter does not fit the integer column it is cast to. Arithmetic
// overflow ("integer out of range") carries the same code.
const castOutOfRangePrefix = `value "`

// IsFormatViolation reports whether err is Postgres rejecting a parameter
// that could not be cast to the column type, e.g. "abc" or "9999999999" for
// an integer id.
func IsFormatViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case CodeInvalidTextRepresentation:
		return true
	case CodeNumericValueOutOfRange:
		return strings.HasPrefix(pqErr.Message, castOutOfRangePrefix)
	}
	return false
}

// IsNumericOverflow reports whether err is an integer overflow inside a
// statement, e.g. votes + delta exceeding the column range.
func IsNumericOverflow(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		pqErr.Code == CodeNumericValueOutOfRange &&
		!strings.HasPrefix(pqErr.Message, castOutOfRangePrefix)
}

// IsForeignKeyViolation reports whether err is a foreign key failure and,
// if so, which constraint fired.
func IsForeignKeyViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == CodeForeignKeyViolation {
		return pqErr.Constraint, true
	}
	return "", false
}
