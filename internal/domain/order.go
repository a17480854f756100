package domain

import "time"

// CheckoutForm holds the delivery details collected at checkout.
// Reference and CardMessage are optional; everything else is required.
type CheckoutForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	NationalID   string `json:"nationalId"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Reference    string `json:"reference,omitempty"`
	DeliveryDate string `json:"deliveryDate"`
	CardMessage  string `json:"cardMessage,omitempty"`
}

// Order is the payload posted to the order-intake endpoint: the form
// fields, a snapshot of the cart, the computed total, and a timestamp.
type Order struct {
	OrderID string `json:"orderId"`
	CheckoutForm
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placedAt"`
}
