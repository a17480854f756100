package usecase

import (
	"fmt"
	"math"

	"github.com/amoremio/backend/internal/domain"
)

// currencyPrefix is fixed: the shop prices everything in dollars.
const currencyPrefix = "$"

// FormatPrice renders any price-shaped value as a display string with two
// decimal digits. Absent, non-numeric, and NaN inputs all format as the
// zero string; the function never fails and never returns raw input.
func FormatPrice(value any) string {
	amount := domain.ParsePrice(value)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return fmt.Sprintf("%s%.2f", currencyPrefix, amount)
}
