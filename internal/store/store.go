// Package store implements the document collections on top of gorm.
package store

import (
	"errors"
	"strings"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"gorm.io/gorm"
)

// ErrVersionConflict means the row changed between read and write.
var ErrVersionConflict = errors.New("store: version conflict")

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate covers translated errors and drivers that do not translate.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}

func wrap(err error) error {
	return apperrors.Persistence(err)
}
