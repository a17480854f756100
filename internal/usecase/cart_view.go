package usecase

import "github.com/amoremio/backend/internal/domain"

// CartLineView is one rendered cart row: everything a template needs to
// show the line and wire its increment, decrement, and delete actions.
type CartLineView struct {
	Index     int    `json:"index"`
	Identity  string `json:"identity"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl,omitempty"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// CartView is the rendered cart. Empty is a distinct state with its own
// message and a way back to the catalog, not just a zero-length list.
type CartView struct {
	Empty        bool           `json:"empty"`
	EmptyMessage string         `json:"emptyMessage,omitempty"`
	CatalogLink  string         `json:"catalogLink,omitempty"`
	Lines        []CartLineView `json:"lines,omitempty"`
	Total        string         `json:"total"`
	Count        int            `json:"count"`
}

// BuildCartView renders the cart lines into a view model. Pure: all cart
// reads happen before the call.
func BuildCartView(items []domain.CartItem) CartView {
	if len(items) == 0 {
		return CartView{
			Empty:        true,
			EmptyMessage: "Your cart is empty",
			CatalogLink:  "/catalog",
			Total:        FormatPrice(nil),
		}
	}

	view := CartView{Lines: make([]CartLineView, 0, len(items))}
	var total float64
	for index, item := range items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		subtotal := item.Subtotal()
		total += subtotal
		view.Count += quantity

		view.Lines = append(view.Lines, CartLineView{
			Index:     index,
			Identity:  item.Identity,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			UnitPrice: FormatPrice(item.Price),
			Quantity:  quantity,
			Subtotal:  FormatPrice(subtotal),
		})
	}
	view.Total = FormatPrice(total)
	return view
}
