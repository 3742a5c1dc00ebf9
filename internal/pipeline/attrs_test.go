package pipeline

import (
	"testing"

	"machbridge/internal"
)

func TestDeriveAttributesTotal(t *testing.T) {
	for _, category := range internal.CategoryOrder {
		attrs := DeriveAttributes(category)
		if attrs.HSCode == "" {
			t.Fatalf("category %q has no HS code", category)
		}
		if attrs.CustomsDuty <= 0 {
			t.Fatalf("category %q has no duty rate", category)
		}
		if attrs.Glyph == "" {
			t.Fatalf("category %q has no glyph", category)
		}
	}
}

func TestDeriveAttributesKnown(t *testing.T) {
	cases := []struct {
		category internal.Category
		hsCode   string
	}{
		{internal.CategoryBeverage, "8422.30"},
		{internal.CategoryFilling, "8422.30"},
		{internal.CategoryPackaging, "8422.40"},
		{internal.CategoryMeat, "8438.50"},
		{internal.CategoryDairy, "8434.20"},
		{internal.CategoryMixing, "8438.80"},
		{internal.CategoryBakery, "8438.10"},
		{internal.CategoryPrinting, "8443.39"},
		{internal.CategoryPaper, "8439.20"},
	}
	for _, tc := range cases {
		if got := DeriveAttributes(tc.category); got.HSCode != tc.hsCode {
			t.Fatalf("DeriveAttributes(%q).HSCode = %q, want %q", tc.category, got.HSCode, tc.hsCode)
		}
	}
}

func TestDeriveAttributesFallback(t *testing.T) {
	attrs := DeriveAttributes(internal.Category("not-a-category"))
	if attrs.HSCode != "8479.89" || attrs.CustomsDuty != 7.5 {
		t.Fatalf("unexpected fallback: %+v", attrs)
	}
}
