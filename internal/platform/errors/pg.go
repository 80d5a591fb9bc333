package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgClass is what this service knows about one SQLSTATE
type pgClass struct {
	code      ErrorCode
	retryable bool
}

const (
	sqlStateUniqueViolation = "23505"
	sqlStateUndefinedTable  = "42P01"
)

// sqlStates lists the states that need more than ErrorCodeDB
var sqlStates = map[string]pgClass{
	// integrity and data
	sqlStateUniqueViolation: {code: ErrorCodeDuplicateKey},
	"23502":                 {code: ErrorCodeValidation},
	"23514":                 {code: ErrorCodeValidation},
	"22001":                 {code: ErrorCodeInvalidArgument},
	"22P02":                 {code: ErrorCodeInvalidArgument},

	// server not accepting work
	"25006": {code: ErrorCodeUnavailable},
	"57P03": {code: ErrorCodeUnavailable, retryable: true},
	"57P01": {code: ErrorCodeUnavailable, retryable: true},

	// concurrency
	"40001": {code: ErrorCodeDB, retryable: true},
	"40P01": {code: ErrorCodeDB, retryable: true},
	"55P03": {code: ErrorCodeDB, retryable: true},
}

// transientText matches failures pgx reports without a SQLSTATE
var transientText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"canceling statement due to statement timeout",
	"terminating connection due to administrator command",
	"failed to connect",
	"connection refused",
}

// ExtractPgError finds a *pgconn.PgError anywhere in err's chain
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// SQLState is the five character state of err's PgError, or ""
func SQLState(err error) string {
	if pgErr, ok := ExtractPgError(err); ok {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool { return SQLState(err) == sqlStateUniqueViolation }

// IsUndefinedTable reports a statement against a missing relation
func IsUndefinedTable(err error) bool { return SQLState(err) == sqlStateUndefinedTable }

// DBErrorCode classifies a Postgres error; ok is false when err holds no PgError
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	state := SQLState(err)
	if state == "" {
		return ErrorCodeUnknown, false
	}
	if c, known := sqlStates[state]; known {
		return c.code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its classified code, ErrorCodeDB when unclassified
// nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// IsRetryable reports a transient database condition
// only logs consult it; the insert path never retries
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if state := SQLState(err); state != "" {
		return sqlStates[state].retryable
	}
	msg := strings.ToLower(Root(err).Error())
	for _, s := range transientText {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
