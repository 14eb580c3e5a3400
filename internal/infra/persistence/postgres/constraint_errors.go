package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "sqlstate 23505")
}

// violatesConstraint reports whether err is a unique violation on the
// named index. Several tables carry more than one unique index, so the
// caller needs to know which one fired to pick the right domain error.
// The driver puts the constraint name in the message and GORM's
// translated error keeps it, which is why the models name their
// indexes explicitly.
func violatesConstraint(err error, constraintName string) bool {
	return isUniqueConstraintViolation(err) && strings.Contains(err.Error(), constraintName)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "sqlstate 23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "sqlstate 23502")
}
