package pipeline

import (
	"testing"

	"machbridge/internal"
)

func TestParsePriceGerman(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"6.029", 6029},
		{"1.234,50", 1234.50},
		{"€ 12.500", 12500},
		{"950", 950},
	}
	for _, tc := range cases {
		got := ParsePrice(tc.input, internal.PriceGerman)
		if got == nil || *got != tc.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParsePriceEnglish(t *testing.T) {
	got := ParsePrice("€6,029", internal.PriceEnglish)
	if got == nil || *got != 6029 {
		t.Fatalf("got %v want 6029", got)
	}
}

func TestParsePriceSentinels(t *testing.T) {
	inputs := []string{
		"Price on request",
		"CONTACT seller",
		"see newsletter",
		"Preisinfo",
		"price info on demand",
		"auf Anfrage",
		"new price coming",
		"",
		"   ",
	}
	for _, input := range inputs {
		if got := ParsePrice(input, internal.PriceGerman); got != nil {
			t.Fatalf("ParsePrice(%q) = %v, want nil", input, *got)
		}
	}
}

func TestParsePriceGarbage(t *testing.T) {
	for _, input := range []string{"n/a", "-500", "tbd"} {
		if got := ParsePrice(input, internal.PriceEnglish); got != nil {
			t.Fatalf("ParsePrice(%q) = %v, want nil", input, *got)
		}
	}
}

func TestParseYear(t *testing.T) {
	if got := ParseYear("1998"); got == nil || *got != 1998 {
		t.Fatalf("got %v", got)
	}
	for _, input := range []string{"1899", "2031", "0", "199x", "", "early 2000s"} {
		if got := ParseYear(input); got != nil {
			t.Fatalf("ParseYear(%q) = %v, want nil", input, *got)
		}
	}
	if got := ParseYear("1900"); got == nil || *got != 1900 {
		t.Fatalf("lower bound inclusive, got %v", got)
	}
	if got := ParseYear("2030"); got == nil || *got != 2030 {
		t.Fatalf("upper bound inclusive, got %v", got)
	}
}

func TestNormalizeCondition(t *testing.T) {
	cases := []struct {
		input string
		want  internal.Condition
	}{
		{"Neuwertig", internal.ConditionExcellent},
		{"sehr gut (gebraucht)", internal.ConditionExcellent},
		{"excellent condition", internal.ConditionExcellent},
		{"like new", internal.ConditionLikeNew},
		{"new", internal.ConditionLikeNew},
		{"new (used once)", internal.ConditionGood},
		{"gebraucht", internal.ConditionGood},
		{"überholt", internal.ConditionGood},
		{"ready for operation", internal.ConditionGood},
		{"fair", internal.ConditionFair},
		{"", internal.ConditionGood},
		{"unknown text", internal.ConditionGood},
	}
	for _, tc := range cases {
		if got := NormalizeCondition(tc.input); got != tc.want {
			t.Fatalf("NormalizeCondition(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCleanLocation(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{", Berlin, Deutschland", "Berlin, Germany"},
		{`"Mailand, Italien"`, "Mailand, Italy"},
		{"  ", "Europe"},
		{"", "Europe"},
		{"Lyon, Frankreich", "Lyon, France"},
	}
	for _, tc := range cases {
		if got := CleanLocation(tc.input, "Europe"); got != tc.want {
			t.Fatalf("CleanLocation(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTranslateTitle(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Füllmaschine XYZ", "Filling Machine XYZ"},
		{"Abfüllanlage", "Filling Line"},
		{"Mischer M-200", "Mixer M-200"},
		{"Krones Bottling Line", "Krones Bottling Line"},
	}
	for _, tc := range cases {
		if got := TranslateTitle(tc.input); got != tc.want {
			t.Fatalf("TranslateTitle(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
