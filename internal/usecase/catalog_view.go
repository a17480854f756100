package usecase

import (
	"strconv"
	"strings"

	"github.com/amoremio/backend/internal/domain"
)

// DefaultPageSize is the catalog grid page size.
const DefaultPageSize = 24

// PageEllipsis is the gap marker in a windowed pagination control.
const PageEllipsis = "..."

// CatalogState is the explicit view state for the catalog grid: the
// active category filter and the current page. It replaces the ambient
// globals the storefront pages used to mutate.
type CatalogState struct {
	Category string
	Page     int
	PageSize int
}

// NewCatalogState returns the initial grid state: all categories, first
// page, default page size.
func NewCatalogState(pageSize int) CatalogState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return CatalogState{Category: domain.CategoryAll, Page: 1, PageSize: pageSize}
}

// WithCategory returns the state filtered to category, reset to page one.
func (s CatalogState) WithCategory(category string) CatalogState {
	s.Category = category
	s.Page = 1
	return s
}

// WithPage returns the state moved to the given page.
func (s CatalogState) WithPage(page int) CatalogState {
	s.Page = page
	return s
}

// FilterByCategory returns the products whose classified category matches
// the filter, case-insensitively. The "All" filter (or an empty one)
// passes everything through.
func FilterByCategory(products []domain.Product, category string) []domain.Product {
	if category == "" || strings.EqualFold(category, domain.CategoryAll) {
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if strings.EqualFold(product.Category, category) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// Paginate slices one page out of the list. Pages outside [1, totalPages]
// clamp to the nearest valid page. Returns the page slice, the clamped
// page number, and the total page count (at least 1).
func Paginate(products []domain.Product, page, pageSize int) ([]domain.Product, int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(products) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], page, totalPages
}

// PageWindow builds the windowed pagination control. Up to seven pages
// render in full; beyond that the control shows the first five plus the
// last page near the start, the first page plus the last five near the
// end, and first + current±1 + last in between, with ellipsis markers in
// the gaps.
func PageWindow(current, totalPages int) []string {
	if totalPages <= 7 {
		pages := make([]string, 0, totalPages)
		for page := 1; page <= totalPages; page++ {
			pages = append(pages, strconv.Itoa(page))
		}
		return pages
	}

	switch {
	case current <= 4:
		pages := []string{}
		for page := 1; page <= 5; page++ {
			pages = append(pages, strconv.Itoa(page))
		}
		return append(pages, PageEllipsis, strconv.Itoa(totalPages))

	case current >= totalPages-3:
		pages := []string{"1", PageEllipsis}
		for page := totalPages - 4; page <= totalPages; page++ {
			pages = append(pages, strconv.Itoa(page))
		}
		return pages

	default:
		return []string{
			"1",
			PageEllipsis,
			strconv.Itoa(current - 1),
			strconv.Itoa(current),
			strconv.Itoa(current + 1),
			PageEllipsis,
			strconv.Itoa(totalPages),
		}
	}
}

// ProductCard is one tile in the catalog grid.
type ProductCard struct {
	Identity  string `json:"identity"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Price     string `json:"price"`
	Tag       string `json:"tag,omitempty"`
	Available bool   `json:"available"`
	Category  string `json:"category"`
	DetailURL string `json:"detailUrl,omitempty"`
}

// CatalogView is the rendered catalog grid for one state.
type CatalogView struct {
	Category     string        `json:"category"`
	Page         int           `json:"page"`
	TotalPages   int           `json:"totalPages"`
	Pages        []string      `json:"pages"`
	Cards        []ProductCard `json:"cards"`
	Empty        bool          `json:"empty"`
	EmptyMessage string        `json:"emptyMessage,omitempty"`
}

// BuildCatalogView filters and paginates the catalog for the given state
// and renders the visible page as cards plus pagination controls.
func BuildCatalogView(products []domain.Product, state CatalogState) CatalogView {
	filtered := FilterByCategory(products, state.Category)
	pageItems, page, totalPages := Paginate(filtered, state.Page, state.PageSize)

	view := CatalogView{
		Category:   state.Category,
		Page:       page,
		TotalPages: totalPages,
		Pages:      PageWindow(page, totalPages),
	}

	if len(filtered) == 0 {
		view.Empty = true
		if state.Category == "" || strings.EqualFold(state.Category, domain.CategoryAll) {
			view.EmptyMessage = "No products are available right now."
		} else {
			view.EmptyMessage = "No products in this category."
		}
		return view
	}

	view.Cards = make([]ProductCard, 0, len(pageItems))
	for _, product := range pageItems {
		card := ProductCard{
			Identity:  product.Identity,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Price:     FormatPrice(product.Price),
			Tag:       product.Tag,
			Available: product.Available,
			Category:  product.Category,
		}
		if product.Identity != "" {
			card.DetailURL = "/products/" + product.Identity
		}
		view.Cards = append(view.Cards, card)
	}
	return view
}
