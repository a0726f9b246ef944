package query

import (
	"testing"

	"github.com/medebd/medicine-api/catalogparser/entities"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Paracetamol", "Paracetamol"},
		{"  Paracetamol  ", "Paracetamol"},
		{"Paracetamol   BP", "Paracetamol BP"},
		{"Paracetamol\t+\nCaffeine", "Paracetamol + Caffeine"},
	}

	for _, tt := range tests {
		got := CollapseWhitespace(tt.in)
		if got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// Idempotence
		if again := CollapseWhitespace(got); again != got {
			t.Errorf("CollapseWhitespace not idempotent for %q: %q != %q", tt.in, again, got)
		}
	}
}

func TestNormalizeGeneric(t *testing.T) {
	g := entities.Generic{
		GenericID:         1,
		GenericName:       "  Paracetamol   BP ",
		GenericNameBangla: " প্যারাসিটামল  ",
		Indication:        []string{"  fever ", "pain"},
	}

	got := NormalizeGeneric(g)

	if got.GenericName != "Paracetamol BP" {
		t.Errorf("GenericName = %q, want %q", got.GenericName, "Paracetamol BP")
	}
	if got.GenericNameBangla != "প্যারাসিটামল" {
		t.Errorf("GenericNameBangla = %q, want %q", got.GenericNameBangla, "প্যারাসিটামল")
	}

	// Indications pass through untouched
	if got.Indication[0] != "  fever " {
		t.Errorf("Indication[0] = %q, should be unchanged", got.Indication[0])
	}

	// The input record itself is not modified
	if g.GenericName != "  Paracetamol   BP " {
		t.Error("NormalizeGeneric must not mutate its input")
	}
}

func TestSummarizeGeneric(t *testing.T) {
	tests := []struct {
		name   string
		bangla string
		want   *string
	}{
		{"normal bangla name", "প্যারাসিটামল", strPtr("প্যারাসিটামল")},
		{"two runes kept", "ab", strPtr("ab")},
		{"single rune dropped", "a", nil},
		{"single rune with padding dropped", "  a ", nil},
		{"empty dropped", "", nil},
		{"whitespace only dropped", "   ", nil},
		{"padding trimmed", "  ab  ", strPtr("ab")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeGeneric(entities.Generic{
				GenericID:         7,
				GenericName:       "Paracetamol",
				GenericNameBangla: tt.bangla,
			})

			if got.GenericID != 7 || got.GenericName != "Paracetamol" {
				t.Errorf("summary id/name = %d/%q, want 7/Paracetamol", got.GenericID, got.GenericName)
			}

			switch {
			case tt.want == nil && got.GenericNameBangla != nil:
				t.Errorf("GenericNameBangla = %q, want nil", *got.GenericNameBangla)
			case tt.want != nil && got.GenericNameBangla == nil:
				t.Errorf("GenericNameBangla = nil, want %q", *tt.want)
			case tt.want != nil && *got.GenericNameBangla != *tt.want:
				t.Errorf("GenericNameBangla = %q, want %q", *got.GenericNameBangla, *tt.want)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
