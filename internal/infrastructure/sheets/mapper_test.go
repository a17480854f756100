package sheets

import (
	"testing"

	"github.com/amoremio/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapProduct(t *testing.T) {
	t.Run("maps a typical sheet row", func(t *testing.T) {
		record := domain.ProductRecord{
			"id":          "b001",
			"Nombre":      "Rosa Roja",
			"Imagen":      "https://example.com/rosa.jpg",
			"Precio":      "15.00",
			"Etiqueta":    " Nuevo ",
			"Descripcion": "Una rosa",
		}

		product := MapProduct(record)

		assert.Equal(t, "B001", product.Identity)
		assert.Equal(t, "Rosa Roja", product.Name)
		assert.Equal(t, "https://example.com/rosa.jpg", product.ImageURL)
		assert.Equal(t, 15.0, product.Price)
		assert.True(t, product.Available)
		assert.Equal(t, "Nuevo", product.Tag)
		assert.Equal(t, "Una rosa", product.Description)
	})

	t.Run("numeric price and alternate casings", func(t *testing.T) {
		record := domain.ProductRecord{
			"Codigo": "AF010",
			"nombre": "Corona",
			"precio": 45.5,
		}

		product := MapProduct(record)

		assert.Equal(t, "AF010", product.Identity)
		assert.Equal(t, "Corona", product.Name)
		assert.Equal(t, 45.5, product.Price)
	})

	t.Run("malformed values resolve to defaults", func(t *testing.T) {
		record := domain.ProductRecord{
			"Nombre": "Misterio",
			"Precio": "not-a-number",
		}

		product := MapProduct(record)

		assert.Equal(t, "", product.Identity)
		assert.Equal(t, 0.0, product.Price)
		assert.True(t, product.Available)
	})

	t.Run("explicit unavailability", func(t *testing.T) {
		assert.False(t, MapProduct(domain.ProductRecord{"Disponible": false}).Available)
		assert.False(t, MapProduct(domain.ProductRecord{"Disponible": "FALSE"}).Available)
		assert.True(t, MapProduct(domain.ProductRecord{"Disponible": true}).Available)
		assert.True(t, MapProduct(domain.ProductRecord{}).Available)
	})

	t.Run("preserves explicit narrative fields", func(t *testing.T) {
		record := domain.ProductRecord{
			"id":              "S001",
			"fullDescription": "Hand written copy.",
			"includes":        []any{"12 roses", "vase"},
			"idealFor":        []any{"Anniversary"},
			"symbolism":       "Love.",
		}

		product := MapProduct(record)

		assert.Equal(t, "Hand written copy.", product.FullDescription)
		assert.Equal(t, []string{"12 roses", "vase"}, product.Includes)
		assert.Equal(t, []string{"Anniversary"}, product.IdealFor)
		assert.Equal(t, "Love.", product.Symbolism)
	})
}

func TestMapProducts(t *testing.T) {
	records := []domain.ProductRecord{
		{"id": "B001", "Nombre": "Rosa"},
		{"Nombre": "Sin ID"},
	}

	products := MapProducts(records)

	// Records without an identity stay in the catalog.
	assert.Len(t, products, 2)
	assert.Equal(t, "B001", products[0].Identity)
	assert.Equal(t, "", products[1].Identity)
}
