package infra

import (
	"errors"
	"log/slog"

	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a low-level error. Without an explicit kind the kind is
// derived from the PostgreSQL error code.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := Classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
	KindConcurrency        RepositoryErrorKind = "CONCURRENCY"
)

const (
	PgErrCodeUniqueViolation      = "23505"
	PgErrCodeForeignKeyViolation  = "23503"
	PgErrCodeCheckViolation       = "23514"
	PgErrCodeExclusionViolation   = "23P01"
	PgErrCodeSerializationFailure = "40001"
	PgErrCodeDeadlockDetected     = "40P01"
	PgErrCodeLockNotAvailable     = "55P03"
)

func Classify(err error) (RepositoryErrorKind, string) {
	if err == nil {
		return KindDBFailure, ""
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case PgErrCodeUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case PgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case PgErrCodeCheckViolation:
		return KindCheckViolated, pgErr.ConstraintName
	case PgErrCodeExclusionViolation:
		return KindExclusionViolated, pgErr.ConstraintName
	case PgErrCodeSerializationFailure, PgErrCodeDeadlockDetected, PgErrCodeLockNotAvailable:
		return KindConcurrency, ""
	default:
		return KindDBFailure, ""
	}
}

// PgErrorCode returns the SQLSTATE of the first PostgreSQL error in err's chain, or "".
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}

// IsConcurrencyError reports lock or serialization contention anywhere in err's chain.
func IsConcurrencyError(err error) bool {
	if IsKind(err, KindConcurrency) {
		return true
	}
	switch PgErrorCode(err) {
	case PgErrCodeSerializationFailure, PgErrCodeDeadlockDetected, PgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}
