package usecase

import (
	"testing"

	"github.com/amoremio/backend/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		want     string
	}{
		{"bouquet prefix", "B001", domain.CategoryBouquets},
		{"funeral prefix", "AF010", domain.CategoryFuneral},
		{"special prefix", "S003", domain.CategorySpecial},
		{"vase prefix", "J007", domain.CategoryVase},
		{"unknown prefix", "X123", domain.CategoryUncategorized},
		{"empty identity", "", domain.CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.identity); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.identity, got, tt.want)
			}
		})
	}

	t.Run("two-letter prefix wins over shared first letter", func(t *testing.T) {
		// If a one-letter bucket ever shares the funeral marker's first
		// character, AF must still classify as funeral.
		if got := Classify("AF001"); got != domain.CategoryFuneral {
			t.Errorf("Classify(AF001) = %q, want %q", got, domain.CategoryFuneral)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if got := Classify("B010"); got != domain.CategoryBouquets {
				t.Fatalf("Classify(B010) = %q on run %d", got, i)
			}
		}
	})
}
