package utils

import (
	"testing"
)

func TestNormalizeBrandKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normalized", input: "zara", want: "zara"},
		{name: "mixed case", input: "Zara", want: "zara"},
		{name: "surrounding whitespace", input: "  ZARA \t", want: "zara"},
		{name: "ampersand", input: "H&M", want: "hm"},
		{name: "inner spaces", input: "Calvin Klein", want: "calvinklein"},
		{name: "apostrophe", input: "The Farmer's Dog", want: "thefarmersdog"},
		{name: "digits kept", input: "7 For All Mankind", want: "7forallmankind"},
		{name: "plus sign", input: "Titan Eye+", want: "titaneye"},
		{name: "punctuation only", input: "!!!", want: ""},
		{name: "non ascii letters dropped", input: "Fjällräven", want: "fjllrven"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBrandKey(tt.input); got != tt.want {
				t.Errorf("NormalizeBrandKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeBrandKey_Idempotent(t *testing.T) {
	inputs := []string{"Zara", "H&M", "Mom's Spaghetti", "Urban-Hub 42"}
	for _, in := range inputs {
		once := NormalizeBrandKey(in)
		if twice := NormalizeBrandKey(once); twice != once {
			t.Errorf("NormalizeBrandKey not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fashion", "Fashion"},
		{"sports wear", "Sports Wear"},
		{"eye-care", "Eye-Care"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToTitleCase(tt.input); got != tt.want {
			t.Errorf("ToTitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
