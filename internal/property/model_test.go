package property

import (
	"errors"
	"testing"
)

func testAddress(t *testing.T) *Address {
	t.Helper()
	a, err := NewAddress("", 12, "Elm St", "A1A1A1", "Springfield")
	if err != nil {
		t.Fatalf("building test address: %v", err)
	}
	return a
}

func TestParseResidenceType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ResidenceType
		wantErr error
	}{
		{"lowercase", "residence", Residence, nil},
		{"uppercase", "COMMERCIAL", Commercial, nil},
		{"mixed case", "ReTaIl", Retail, nil},
		{"empty", "", "", ErrMissingField},
		{"unknown", "houseboat", "", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResidenceType(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want kind %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewPropertyValid(t *testing.T) {
	addr := testAddress(t)
	p, err := NewProperty(250000, addr, 3, false, "Residence", "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID() != "P1" {
		t.Errorf("id = %q, want %q", p.ID(), "P1")
	}
	if p.Price() != 250000 {
		t.Errorf("price = %g, want 250000", p.Price())
	}
	if p.Address() != addr {
		t.Error("address not the one supplied")
	}
	if p.Bedrooms() != 3 {
		t.Errorf("bedrooms = %d, want 3", p.Bedrooms())
	}
	if p.HasPool() {
		t.Error("pool flag set, want unset")
	}
	if p.Type() != Residence {
		t.Errorf("type = %q, want %q", p.Type(), Residence)
	}
}

func TestNewPropertyBounds(t *testing.T) {
	addr := &Address{streetNumber: 1, streetName: "Elm St", postalCode: "90210", city: "Springfield"}

	tests := []struct {
		name     string
		price    float64
		addr     *Address
		bedrooms int
		resType  string
		id       string
		want     error
	}{
		{"zero price", 0, addr, 3, "residence", "P1", ErrInvalidArgument},
		{"negative price", -1, addr, 3, "residence", "P1", ErrInvalidArgument},
		{"nil address", 100000, nil, 3, "residence", "P1", ErrMissingField},
		{"zero bedrooms", 100000, addr, 0, "residence", "P1", ErrInvalidArgument},
		{"too many bedrooms", 100000, addr, 21, "residence", "P1", ErrInvalidArgument},
		{"missing type", 100000, addr, 3, "", "P1", ErrMissingField},
		{"unknown type", 100000, addr, 3, "castle", "P1", ErrInvalidArgument},
		{"empty id", 100000, addr, 3, "residence", "", ErrInvalidArgument},
		{"id too long", 100000, addr, 3, "residence", "PROP123", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProperty(tt.price, tt.addr, tt.bedrooms, false, tt.resType, tt.id)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want kind %v", err, tt.want)
			}
		})
	}
}

func TestSetPrice(t *testing.T) {
	p, err := NewProperty(250000, testAddress(t), 3, false, "residence", "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.SetPrice(300000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price() != 300000 {
		t.Errorf("price = %g, want 300000", p.Price())
	}

	// A rejected update leaves the stored price alone.
	if err := p.SetPrice(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want kind %v", err, ErrInvalidArgument)
	}
	if err := p.SetPrice(-500); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want kind %v", err, ErrInvalidArgument)
	}
	if p.Price() != 300000 {
		t.Errorf("price = %g after failed updates, want 300000", p.Price())
	}
}
