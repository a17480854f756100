package sheets

import (
	"strings"

	"github.com/amoremio/backend/internal/domain"
)

// Field name candidates per product attribute. The sheet is maintained by
// hand and its headers have drifted across revisions, so each attribute
// is probed against every name seen in the wild. This adapter is the only
// place external field names appear; everything past it uses the
// canonical Product type.
var (
	nameFields        = []string{"Nombre", "nombre", "NOMBRE", "Name", "name"}
	imageFields       = []string{"Imagen", "imagen", "Image", "image", "imageUrl"}
	priceFields       = []string{"Precio", "precio", "Price", "price"}
	availableFields   = []string{"Disponible", "disponible", "Available", "available"}
	tagFields         = []string{"Etiqueta", "etiqueta", "Tag", "tag"}
	descriptionFields = []string{"Descripcion", "Descripción", "descripcion", "Description", "description"}

	fullDescriptionFields = []string{"fullDescription", "FullDescription"}
	includesFields        = []string{"includes", "Includes"}
	idealForFields        = []string{"idealFor", "IdealFor"}
	symbolismFields       = []string{"symbolism", "Symbolism"}
)

// MapProduct converts a raw sheet record to the canonical Product.
// Missing or malformed values resolve to safe defaults: zero price, empty
// identity, available unless explicitly marked otherwise. Category is left
// blank here; classification happens on the normalized identity.
func MapProduct(record domain.ProductRecord) domain.Product {
	return domain.Product{
		Identity:    domain.ResolveIdentity(record),
		Name:        probeString(record, nameFields),
		ImageURL:    probeString(record, imageFields),
		Price:       domain.ParsePrice(probe(record, priceFields)),
		Available:   probeAvailable(record),
		Tag:         strings.TrimSpace(probeString(record, tagFields)),
		Description: probeString(record, descriptionFields),

		FullDescription: probeString(record, fullDescriptionFields),
		Includes:        probeStringSlice(record, includesFields),
		IdealFor:        probeStringSlice(record, idealForFields),
		Symbolism:       probeString(record, symbolismFields),
	}
}

// MapProducts converts a list of records, dropping nothing: even records
// without an identity stay in the catalog (they render, they just cannot
// be linked to).
func MapProducts(records []domain.ProductRecord) []domain.Product {
	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, MapProduct(record))
	}
	return products
}

func probe(record domain.ProductRecord, fields []string) any {
	for _, field := range fields {
		if value, ok := record[field]; ok && value != nil {
			return value
		}
	}
	return nil
}

func probeString(record domain.ProductRecord, fields []string) string {
	value, _ := probe(record, fields).(string)
	return value
}

// probeAvailable reads availability. Products are assumed available
// unless the sheet explicitly says otherwise.
func probeAvailable(record domain.ProductRecord) bool {
	switch v := probe(record, availableFields).(type) {
	case bool:
		return v
	case string:
		return !strings.EqualFold(strings.TrimSpace(v), "false")
	default:
		return true
	}
}

func probeStringSlice(record domain.ProductRecord, fields []string) []string {
	raw, ok := probe(record, fields).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
