package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amoremio/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client talks to the spreadsheet-backed storefront endpoints: one GET
// deployment serving the product list, one POST deployment receiving
// order payloads. Both are external and uncontrolled; the contract is
// plain JSON over HTTP.
type Client struct {
	httpClient  *http.Client
	catalogURL  string
	intakeURL   string
	rateLimiter *rate.Limiter
}

// NewClient creates a client for the given endpoints. requestsPerMinute
// throttles outbound calls; the deployment is shared with the live
// storefront, so the backend must not hammer it.
func NewClient(catalogURL, intakeURL string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		catalogURL:  catalogURL,
		intakeURL:   intakeURL,
		rateLimiter: limiter,
	}
}

// FetchProducts retrieves the product list. The response must be a JSON
// array; anything else is an error for the caller to degrade on. There is
// no retry: a failed load renders as an empty catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "AmoreMio/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[SHEETS] catalog fetch failed - status: %d, body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var records []domain.ProductRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		log.Printf("[SHEETS] catalog decode error: %v", err)
		return nil, fmt.Errorf("%w: response is not a product array", domain.ErrCatalogUnavailable)
	}

	log.Printf("[SHEETS] fetched %d product records", len(records))
	return records, nil
}

// SubmitOrder posts the order payload to the intake endpoint as a
// form-encoded body with a single "data" field holding the JSON order.
// The request is opaque: the response status and body are discarded, only
// transport-level failure is reported, and callers may ignore even that.
func (c *Client) SubmitOrder(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	form := url.Values{}
	form.Set("data", string(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.intakeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "AmoreMio/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("order intake unreachable: %w", err)
	}
	defer resp.Body.Close()

	// Opaque mode: drain and ignore whatever the script replies with.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	log.Printf("[SHEETS] order %s submitted to intake", order.OrderID)
	return nil
}
