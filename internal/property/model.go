// Package property provides the validated catalog records: Address,
// Property, and the residence type enumeration.
package property

import (
	"fmt"
	"strings"
)

// ResidenceType classifies a property listing.
type ResidenceType string

const (
	Residence  ResidenceType = "residence"
	Commercial ResidenceType = "commercial"
	Retail     ResidenceType = "retail"
)

// ValidTypes is the set of allowed residence types.
var ValidTypes = []ResidenceType{Residence, Commercial, Retail}

// ParseResidenceType normalizes s (any casing) to a ResidenceType.
func ParseResidenceType(s string) (ResidenceType, error) {
	if s == "" {
		return "", fmt.Errorf("residence type: %w", ErrMissingField)
	}
	t := ResidenceType(strings.ToLower(s))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid residence type %q: %w", s, ErrInvalidArgument)
	}
	return t, nil
}

// IsValid checks if a residence type is recognized.
func (t ResidenceType) IsValid() bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the residence type.
func (t ResidenceType) Label() string {
	switch t {
	case Residence:
		return "Residence"
	case Commercial:
		return "Commercial"
	case Retail:
		return "Retail"
	default:
		return string(t)
	}
}

// Property bounds.
const (
	minBedrooms = 1
	maxBedrooms = 20
	minIDLen    = 1
	maxIDLen    = 6
)

// Property is a single listing record. Every field except the price is
// fixed at construction; the price changes only through SetPrice, which
// keeps it strictly positive. Identifier uniqueness is not checked here;
// an Agency's insert semantics decide collisions.
type Property struct {
	price    float64
	address  *Address
	bedrooms int
	pool     bool
	resType  ResidenceType
	id       string
}

// NewProperty validates every field and returns the property. The
// residence type accepts any casing and is stored normalized.
func NewProperty(price float64, addr *Address, bedrooms int, pool bool, residenceType, id string) (*Property, error) {
	if price <= 0 {
		return nil, fmt.Errorf("invalid price %g: %w", price, ErrInvalidArgument)
	}

	if addr == nil {
		return nil, fmt.Errorf("address: %w", ErrMissingField)
	}

	if bedrooms < minBedrooms || bedrooms > maxBedrooms {
		return nil, fmt.Errorf("invalid number of bedrooms %d: %w", bedrooms, ErrInvalidArgument)
	}

	t, err := ParseResidenceType(residenceType)
	if err != nil {
		return nil, err
	}

	if len(id) < minIDLen || len(id) > maxIDLen {
		return nil, fmt.Errorf("invalid property id %q: %w", id, ErrInvalidArgument)
	}

	return &Property{
		price:    price,
		address:  addr,
		bedrooms: bedrooms,
		pool:     pool,
		resType:  t,
		id:       id,
	}, nil
}

// ID returns the property identifier.
func (p *Property) ID() string { return p.id }

// Price returns the current price in USD.
func (p *Property) Price() float64 { return p.price }

// Address returns the property's address.
func (p *Property) Address() *Address { return p.address }

// Bedrooms returns the bedroom count.
func (p *Property) Bedrooms() int { return p.bedrooms }

// HasPool reports whether the property has a swimming pool.
func (p *Property) HasPool() bool { return p.pool }

// Type returns the normalized residence type.
func (p *Property) Type() ResidenceType { return p.resType }

// SetPrice updates the price in USD. The price must stay strictly
// positive; on failure the stored price is unchanged.
func (p *Property) SetPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("invalid price %g: %w", price, ErrInvalidArgument)
	}
	p.price = price
	return nil
}
