package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/amoremio/backend/internal/domain"
	"github.com/google/uuid"
)

// CheckoutService validates the checkout form, records the order with the
// intake endpoint, and builds the outbound hand-off links. Intake is
// best-effort bookkeeping: the payment redirect is the business-critical
// path and proceeds whether or not intake succeeded.
type CheckoutService struct {
	cart           *CartService
	intake         domain.OrderIntake
	paypalHandle   string
	whatsappNumber string
	now            func() time.Time
}

// NewCheckoutService creates a checkout service with dependencies.
func NewCheckoutService(cart *CartService, intake domain.OrderIntake, paypalHandle, whatsappNumber string) *CheckoutService {
	return &CheckoutService{
		cart:           cart,
		intake:         intake,
		paypalHandle:   paypalHandle,
		whatsappNumber: whatsappNumber,
		now:            time.Now,
	}
}

// CheckoutResult reports where the submitted order went. IntakeDelivered
// records whether the bookkeeping POST landed; callers may ignore it.
type CheckoutResult struct {
	OrderID         string `json:"orderId"`
	PaymentURL      string `json:"paymentUrl"`
	Total           string `json:"total"`
	IntakeDelivered bool   `json:"intakeDelivered"`
}

// requiredFields lists the form fields that must be present, in the
// order validation reports them.
var requiredFields = []struct {
	name  string
	value func(form domain.CheckoutForm) string
}{
	{"name", func(f domain.CheckoutForm) string { return f.Name }},
	{"email", func(f domain.CheckoutForm) string { return f.Email }},
	{"phone", func(f domain.CheckoutForm) string { return f.Phone }},
	{"nationalId", func(f domain.CheckoutForm) string { return f.NationalID }},
	{"address", func(f domain.CheckoutForm) string { return f.Address }},
	{"city", func(f domain.CheckoutForm) string { return f.City }},
	{"deliveryDate", func(f domain.CheckoutForm) string { return f.DeliveryDate }},
}

// Validate checks the required form fields and fails closed on the first
// invalid one.
func Validate(form domain.CheckoutForm) error {
	for _, field := range requiredFields {
		if strings.TrimSpace(field.value(form)) == "" {
			return &domain.ValidationError{Field: field.name}
		}
	}

	// Minimal shape check; real verification happens when the shop
	// replies to the address.
	email := strings.TrimSpace(form.Email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return &domain.ValidationError{Field: "email"}
	}

	return nil
}

// Submit runs the checkout: validates the form, assembles the order
// payload from the cart snapshot, posts it to intake fire-and-forget, and
// returns the payment link. An empty cart is rejected before anything
// else happens.
func (s *CheckoutService) Submit(ctx context.Context, form domain.CheckoutForm) (*CheckoutResult, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	if err := Validate(form); err != nil {
		return nil, err
	}

	total := s.cart.Total()
	order := domain.Order{
		OrderID:      uuid.NewString(),
		CheckoutForm: form,
		Items:        items,
		Total:        total,
		PlacedAt:     s.now().UTC(),
	}

	delivered := true
	if err := s.intake.SubmitOrder(ctx, order); err != nil {
		// Intake failure is logged and tolerated; losing the
		// bookkeeping row must not lose the sale.
		log.Printf("[CHECKOUT] order %s intake failed: %v", order.OrderID, err)
		delivered = false
	}

	return &CheckoutResult{
		OrderID:         order.OrderID,
		PaymentURL:      s.PaymentLink(total),
		Total:           FormatPrice(total),
		IntakeDelivered: delivered,
	}, nil
}

// PaymentLink builds the payment-provider link with the amount as a
// two-decimal path segment.
func (s *CheckoutService) PaymentLink(total float64) string {
	return fmt.Sprintf("https://www.paypal.me/%s/%.2f", s.paypalHandle, total)
}

// WhatsAppLink builds the messaging deep link carrying the pre-filled
// order summary for the current cart.
func (s *CheckoutService) WhatsAppLink() (string, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return "", domain.ErrCartEmpty
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lines = append(lines, fmt.Sprintf("%dx %s (%s each)", quantity, item.Name, FormatPrice(item.Price)))
	}

	message := fmt.Sprintf("Hello Amore Mio, I would like to order: %s. Total: %s",
		strings.Join(lines, ", "), FormatPrice(s.cart.Total()))

	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, url.QueryEscape(message)), nil
}
