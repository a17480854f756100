package usecase

import (
	"strings"

	"github.com/amoremio/backend/internal/domain"
)

// categoryPrefixes maps identity prefixes to category labels in matching
// priority order. Longer prefixes come first: an identity starting with
// the two-letter funeral marker must never fall into a one-letter bucket
// that shares its first character.
var categoryPrefixes = []struct {
	prefix   string
	category string
}{
	{"AF", domain.CategoryFuneral},
	{"B", domain.CategoryBouquets},
	{"S", domain.CategorySpecial},
	{"J", domain.CategoryVase},
}

// Classify assigns a category label to a normalized product identity.
// The function is total and pure: every identity, including the empty
// one, maps to exactly one label from the closed category set.
func Classify(identity string) string {
	for _, entry := range categoryPrefixes {
		if strings.HasPrefix(identity, entry.prefix) {
			return entry.category
		}
	}
	return domain.CategoryUncategorized
}
