package util

import "testing"

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		german bool
		want   float64
	}{
		{name: "german thousands dot", input: "6.029", german: true, want: 6029},
		{name: "german decimal comma", input: "1.234,50", german: true, want: 1234.50},
		{name: "german plain", input: "950", german: true, want: 950},
		{name: "english thousands comma", input: "6,029", german: false, want: 6029},
		{name: "english with currency", input: "€ 12,500", german: false, want: 12500},
		{name: "english decimal dot", input: "1250.75", german: false, want: 1250.75},
		{name: "pound sign", input: "£999", german: false, want: 999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDecimal(tc.input, tc.german)
			if !ok {
				t.Fatalf("not parsed")
			}
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestParseDecimalRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "ca. hundert"} {
		if _, ok := ParseDecimal(input, false); ok {
			t.Fatalf("parsed %q", input)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	got := CollapseSpaces("  line one\r\nline\ttwo   end  ")
	if got != "line one line two end" {
		t.Fatalf("got %q", got)
	}
}

func TestTrimLeadingSeparators(t *testing.T) {
	if got := TrimLeadingSeparators(`, "Berlin, Germany`); got != "Berlin, Germany" {
		t.Fatalf("got %q", got)
	}
}
