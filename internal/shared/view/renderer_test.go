package view

import (
	"strings"
	"testing"

	"carRentalFe/web"
)

func TestNewRenderer_ParsesEmbeddedTemplates(t *testing.T) {
	renderer, err := NewRenderer(web.TemplateFS)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	data := map[string]any{
		"title":          "Trang Chủ - Car Rental",
		"page":           "home",
		"totalCars":      3,
		"totalBookings":  0,
		"totalContracts": 0,
		"totalUsers":     5,
	}

	var out strings.Builder
	if err := renderer.Render(&out, "home", data, nil); err != nil {
		t.Fatalf("render home: %v", err)
	}
	html := out.String()
	if !strings.Contains(html, "Trang Chủ - Car Rental") {
		t.Fatal("expected the page title in the output")
	}
	if !strings.Contains(html, ">3<") {
		t.Fatal("expected the car count in the output")
	}
}

func TestRenderer_ErrorPage(t *testing.T) {
	renderer, err := NewRenderer(web.TemplateFS)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	data := map[string]any{
		"title":   "Lỗi",
		"page":    "",
		"message": "Không thể tải thông tin xe",
		"error":   "backend resource not found",
	}

	var out strings.Builder
	if err := renderer.Render(&out, "error", data, nil); err != nil {
		t.Fatalf("render error page: %v", err)
	}
	if !strings.Contains(out.String(), "Không thể tải thông tin xe") {
		t.Fatal("expected the user-facing message in the output")
	}
}
