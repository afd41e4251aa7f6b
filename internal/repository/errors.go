package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Duplicate-key sentinels, one per declared uniqueness constraint. These are
// the only integrity guarantees the schema makes; everything else (including
// cross-entity references) is advisory.
var (
	ErrDuplicateRollNo     = errors.New("student with this roll number already exists")
	ErrDuplicateEmail      = errors.New("student with this email already exists")
	ErrDuplicateCourseName = errors.New("course with this name already exists")
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this course")
	ErrDuplicateUsername   = errors.New("admin with this username already exists")
)

// uniqueViolation reports whether err is a PostgreSQL unique violation
// (code 23505) on the named constraint.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
