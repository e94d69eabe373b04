package domain

import "carRentalFe/internal/shared/normalization"

// The backend wraps payloads inconsistently across endpoints: some return a bare
// array, some a {"data": [...]} envelope, some a domain-named envelope such as
// {"cars": [...]}. Extraction tries a fixed priority order; the generic "data"
// envelope always wins over the domain-named one because it is the backend's
// general-purpose wrapper. Changing that order would change observable behavior
// for bodies that carry both.

// ExtractList pulls the entity sequence out of a raw decoded JSON value.
// domainKey names the endpoint-specific envelope key ("cars", "users",
// "bookings", "contracts"); pass "" when the endpoint has none.
// Extraction is total: unrecognized shapes yield an empty slice, never an error,
// and matched sequences are returned as-is, preserving order and content.
func ExtractList(raw any, domainKey string) []any {
	switch typed := raw.(type) {
	case []any:
		return typed
	case map[string]any:
		if nested, ok := typed["data"].([]any); ok {
			return nested
		}
		if domainKey != "" {
			if nested, ok := typed[domainKey].([]any); ok {
				return nested
			}
		}
	}
	return []any{}
}

// ExtractSingle pulls a single entity out of a raw decoded JSON value.
// A {"data": {...}} envelope is unwrapped; a plain object is the entity itself.
// The second return is false when the body holds no usable entity.
func ExtractSingle(raw any) (map[string]any, bool) {
	typed, ok := raw.(map[string]any)
	if !ok || typed == nil {
		return nil, false
	}
	if nested, ok := typed["data"].(map[string]any); ok {
		return nested, true
	}
	return typed, true
}

// ExtractCount derives a count from a raw body without materializing entities
// when the backend already provides one: a bare number is the count, an object
// with a "total" field uses that field. Anything else falls back to the length
// of the extracted list.
func ExtractCount(raw any, domainKey string) int {
	switch typed := raw.(type) {
	case float64:
		return int(typed)
	case map[string]any:
		if total, ok := typed["total"]; ok {
			return normalization.AsInt(total)
		}
	}
	return len(ExtractList(raw, domainKey))
}

// FilterByField returns the entities whose string-valued field equals want,
// preserving their relative order. Non-object elements are dropped.
func FilterByField(items []any, field, want string) []any {
	filtered := make([]any, 0, len(items))
	for _, item := range items {
		entity, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if normalization.AsString(entity[field]) == want {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
