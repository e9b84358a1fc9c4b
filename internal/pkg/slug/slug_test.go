package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"mixed case", "The Future of Electric Sports Cars", "the-future-of-electric-sports-cars"},
		{"punctuation dropped", "Grand Tour 2024: Recap!", "grand-tour-2024-recap"},
		{"accents stripped", "Café Société", "cafe-societe"},
		{"multiple spaces", "too   many   spaces", "too-many-spaces"},
		{"leading and trailing noise", "  --Trimmed--  ", "trimmed"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.expected {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"hello-world", "a", "grand-tour-2024"}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "Hello", "double--hyphen", "-leading", "trailing-", "with space"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
