package property

import (
	"errors"
	"testing"
)

func TestNewAddressValid(t *testing.T) {
	a, err := NewAddress("12b", 745, "Granville St", "V6Z1K3", "Vancouver")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Unit() != "12b" {
		t.Errorf("unit = %q, want %q", a.Unit(), "12b")
	}
	if a.StreetNumber() != 745 {
		t.Errorf("street number = %d, want 745", a.StreetNumber())
	}
	if a.StreetName() != "Granville St" {
		t.Errorf("street name = %q, want %q", a.StreetName(), "Granville St")
	}
	if a.PostalCode() != "V6Z1K3" {
		t.Errorf("postal code = %q, want %q", a.PostalCode(), "V6Z1K3")
	}
	if a.City() != "Vancouver" {
		t.Errorf("city = %q, want %q", a.City(), "Vancouver")
	}
}

func TestNewAddressNoUnit(t *testing.T) {
	a, err := NewAddress("", 1, "Elm St", "90210", "Springfield")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Unit() != "" {
		t.Errorf("unit = %q, want empty", a.Unit())
	}
}

func TestNewAddressBounds(t *testing.T) {
	tests := []struct {
		name   string
		unit   string
		number int
		street string
		postal string
		city   string
		want   error
	}{
		{"unit too long", "12345", 1, "Elm St", "90210", "Springfield", ErrInvalidArgument},
		{"street number zero", "", 0, "Elm St", "90210", "Springfield", ErrInvalidArgument},
		{"street number negative", "", -5, "Elm St", "90210", "Springfield", ErrInvalidArgument},
		{"street number too large", "", 1000000, "Elm St", "90210", "Springfield", ErrInvalidArgument},
		{"street name missing", "", 1, "", "90210", "Springfield", ErrMissingField},
		{"street name too long", "", 1, "A Very Long Street Name Ave", "90210", "Springfield", ErrInvalidArgument},
		{"postal code missing", "", 1, "Elm St", "", "Springfield", ErrMissingField},
		{"postal code too short", "", 1, "Elm St", "1234", "Springfield", ErrInvalidArgument},
		{"postal code too long", "", 1, "Elm St", "1234567", "Springfield", ErrInvalidArgument},
		{"city missing", "", 1, "Elm St", "90210", "", ErrMissingField},
		{"city too long", "", 1, "Elm St", "90210", "A City Name That Runs Much Too Long", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAddress(tt.unit, tt.number, tt.street, tt.postal, tt.city)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want kind %v", err, tt.want)
			}
		})
	}
}

func TestNewAddressBoundaryLengths(t *testing.T) {
	// Exact minimum and maximum lengths must pass.
	if _, err := NewAddress("a", 1, "E", "12345", "S"); err != nil {
		t.Errorf("minimum lengths rejected: %v", err)
	}
	if _, err := NewAddress("abcd", 999999, "Twenty Char Street A", "123456", "Exactly Thirty Character City!"); err != nil {
		t.Errorf("maximum lengths rejected: %v", err)
	}
}
