package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ProductRecord is a raw product row as returned by the spreadsheet
// endpoint. The shape is not controlled by this system: field names vary
// between sheet revisions, so records stay dynamic until they cross the
// boundary adapter.
type ProductRecord map[string]any

// Category labels assigned by the classifier. The set is closed; anything
// that does not match a known identity prefix lands in Uncategorized.
const (
	CategoryFuneral       = "Funeral Arrangements"
	CategoryBouquets      = "Bouquets"
	CategorySpecial       = "Special Arrangements"
	CategoryVase          = "Vase Arrangements"
	CategoryUncategorized = "Uncategorized"

	// CategoryAll is the catalog filter value that selects every product.
	CategoryAll = "All"
)

// Product is the canonical product shape used everywhere past the boundary
// adapter. Category is derived from Identity, never taken from the sheet.
type Product struct {
	Identity    string  `json:"identity"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	Tag         string  `json:"tag,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`

	// Narrative fields. Populated by enrichment when the sheet does not
	// carry them; explicit sheet values are preserved verbatim.
	FullDescription string   `json:"fullDescription,omitempty"`
	Includes        []string `json:"includes,omitempty"`
	IdealFor        []string `json:"idealFor,omitempty"`
	Symbolism       string   `json:"symbolism,omitempty"`
}

// CartItem is one line in the cart: a product snapshot plus a quantity.
// A stored line with a missing or non-positive quantity is read back as 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price * quantity for the line.
func (i CartItem) Subtotal() float64 {
	qty := i.Quantity
	if qty < 1 {
		qty = 1
	}
	return i.Price * float64(qty)
}

// ParsePrice coerces a price value of unknown type to a float64.
// Sheet cells arrive as numbers, numeric strings, or nothing at all;
// anything that does not parse is treated as zero.
func ParsePrice(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
