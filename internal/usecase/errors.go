package usecase

import (
	"errors"
	"strings"

	"clinic-booking-api/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrPermissionDenied = apperror.PermissionDenied("You do not have permission to perform this action")

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	return isPgError(err, pgUniqueViolation, constraintName)
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	return isPgError(err, pgForeignKeyViolation, constraintName)
}

func isCheckViolation(err error, constraintName string) bool {
	return isPgError(err, pgCheckViolation, constraintName)
}

func isPgError(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}
