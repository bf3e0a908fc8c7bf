package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"

	"gorm.io/gorm"
)

// wrapFetchError maps a missing row to shared.ErrNotFound
func wrapFetchError(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NotFound(kind, id)
	}
	return fmt.Errorf("failed to fetch %s: %w", kind, err)
}

// wrapWriteError maps a unique violation to shared.ErrConflict
func wrapWriteError(err error, action, kind string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s already exists: %w", kind, shared.ErrConflict)
	}
	return fmt.Errorf("failed to %s %s: %w", action, kind, err)
}

// containsPattern builds a case-insensitive LIKE pattern, used with LOWER(column)
func containsPattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
