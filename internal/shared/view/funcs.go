package view

import (
	"encoding/json"
	"html/template"
	"strconv"
	"strings"
	"time"

	"carRentalFe/internal/shared/normalization"
)

// statusBadges maps backend status values to bootstrap context colors.
var statusBadges = map[string]string{
	"AVAILABLE":   "success",
	"RENTED":      "warning",
	"MAINTENANCE": "info",
	"UNAVAILABLE": "secondary",
	"ACTIVE":      "success",
	"INACTIVE":    "secondary",
	"BANNED":      "danger",
	"PENDING":     "warning",
	"CONFIRMED":   "success",
	"CANCELLED":   "danger",
	"COMPLETED":   "info",
}

const defaultCarImage = "/static/img/car.svg"

// FuncMap exposes the presentation helpers the page templates rely on. They
// tolerate missing or oddly typed fields, since entities are opaque maps.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,
		"formatCurrency": formatCurrency,
		"statusBadge":    statusBadge,
		"firstImage":     firstImage,
		"inc":            func(value any) int { return normalization.AsInt(value) + 1 },
		"jsonify":        jsonify,
		"now":            time.Now,
	}
}

func formatDate(value any) string {
	parsed, ok := parseTime(value)
	if !ok {
		return ""
	}
	return parsed.Format("02/01/2006")
}

func formatDateTime(value any) string {
	parsed, ok := parseTime(value)
	if !ok {
		return ""
	}
	return parsed.Format("02/01/2006 15:04")
}

func parseTime(value any) (time.Time, bool) {
	switch typed := value.(type) {
	case time.Time:
		return typed, true
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// formatCurrency renders an amount in Vietnamese đồng with dot grouping.
func formatCurrency(value any) string {
	amount := int64(normalization.AsFloat64(value))
	if amount == 0 {
		return "0 ₫"
	}
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var grouped strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}
	if negative {
		return "-" + grouped.String() + " ₫"
	}
	return grouped.String() + " ₫"
}

func statusBadge(value any) string {
	if badge, ok := statusBadges[normalization.AsString(value)]; ok {
		return badge
	}
	return "secondary"
}

// firstImage returns the first non-empty entry of an images list, or the
// placeholder asset.
func firstImage(value any) string {
	images, ok := value.([]any)
	if !ok {
		return defaultCarImage
	}
	for _, image := range images {
		if src := normalization.AsString(image); src != "" {
			return src
		}
	}
	return defaultCarImage
}

func jsonify(value any) template.JS {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "null"
	}
	return template.JS(encoded)
}
