package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/amoremio/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://catalog.example.com", "https://intake.example.com", 60)

	assert.NotNil(t, client)
	assert.Equal(t, "https://catalog.example.com", client.catalogURL)
	assert.Equal(t, "https://intake.example.com", client.intakeURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestFetchProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)

		records := []map[string]any{
			{"id": "B001", "Nombre": "Rosa", "Precio": "15.00"},
			{"ID": "AF010", "Nombre": "Corona", "Precio": 45.0},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 600)

	records, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Rosa", records[0]["Nombre"])
}

func TestFetchProducts_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 600)

	_, err := client.FetchProducts(context.Background())

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestFetchProducts_NonArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"not an array"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 600)

	_, err := client.FetchProducts(context.Background())

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestFetchProducts_NetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", 600)

	_, err := client.FetchProducts(context.Background())

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestSubmitOrder(t *testing.T) {
	t.Run("posts form-encoded data field", func(t *testing.T) {
		var received url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

			require.NoError(t, r.ParseForm())
			received = r.PostForm
		}))
		defer server.Close()

		client := NewClient("", server.URL, 600)
		order := domain.Order{
			OrderID: "order-1",
			CheckoutForm: domain.CheckoutForm{
				Name:  "Maria",
				Email: "maria@example.com",
			},
			Items: []domain.CartItem{
				{Product: domain.Product{Identity: "B001", Name: "Rosa", Price: 15}, Quantity: 2},
			},
			Total:    30,
			PlacedAt: time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC),
		}

		require.NoError(t, client.SubmitOrder(context.Background(), order))
		require.NotEmpty(t, received.Get("data"))

		var decoded domain.Order
		require.NoError(t, json.Unmarshal([]byte(received.Get("data")), &decoded))
		assert.Equal(t, "order-1", decoded.OrderID)
		assert.Equal(t, "Maria", decoded.Name)
		assert.Equal(t, 30.0, decoded.Total)
		require.Len(t, decoded.Items, 1)
		assert.Equal(t, 2, decoded.Items[0].Quantity)
	})

	t.Run("ignores intake response status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("", server.URL, 600)
		err := client.SubmitOrder(context.Background(), domain.Order{OrderID: "order-2"})
		assert.NoError(t, err)
	})

	t.Run("reports transport failure", func(t *testing.T) {
		client := NewClient("", "http://127.0.0.1:1", 600)
		err := client.SubmitOrder(context.Background(), domain.Order{OrderID: "order-3"})
		assert.Error(t, err)
	})
}
