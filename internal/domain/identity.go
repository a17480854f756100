package domain

import (
	"strconv"
	"strings"
)

// identityFields is the ordered list of field names that may carry a
// product identifier in a sheet row. The sheet has gone through several
// revisions and collaborators, so common casings and synonyms all appear
// in the wild. Order matters: the first non-empty candidate wins.
var identityFields = []string{
	"id", "ID", "Id",
	"idProducto", "IDProducto", "IdProducto",
	"codigo", "Codigo", "CODIGO", "Código",
	"code", "Code", "CODE",
	"Código Producto", "CódigoProducto",
}

// NormalizeIdentity folds a raw identifier to the canonical form used for
// classification and lookup alike: trimmed and uppercased. Both sides of
// every identity comparison must go through this function.
func NormalizeIdentity(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ResolveIdentity extracts the normalized identity from a raw product
// record. It probes the candidate field names in order, first by exact
// key and then case-insensitively, and returns the empty string when no
// candidate holds a value.
func ResolveIdentity(record ProductRecord) string {
	for _, field := range identityFields {
		if id := stringValue(record[field]); id != "" {
			return NormalizeIdentity(id)
		}
	}

	// Second pass for key casings not in the candidate list.
	for _, field := range identityFields {
		for key, value := range record {
			if strings.EqualFold(key, field) {
				if id := stringValue(value); id != "" {
					return NormalizeIdentity(id)
				}
			}
		}
	}

	return ""
}

// stringValue renders a record value as a trimmed string. Sheets
// occasionally deliver numeric IDs, so JSON numbers are accepted too.
func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
