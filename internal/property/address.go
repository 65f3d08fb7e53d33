package property

import "fmt"

// Address bounds. A unit label is optional; the length bound applies
// only when one is present.
const (
	minUnitLen      = 1
	maxUnitLen      = 4
	minStreetNumber = 1
	maxStreetNumber = 999999
	minStreetLen    = 1
	maxStreetLen    = 20
	minPostalLen    = 5
	maxPostalLen    = 6
	minCityLen      = 1
	maxCityLen      = 30
)

// Address is an immutable postal location owned by exactly one Property.
// All fields are validated at construction and cannot change afterwards.
type Address struct {
	unit         string
	streetNumber int
	streetName   string
	postalCode   string
	city         string
}

// NewAddress validates every field and returns the address. An empty
// unit means the address has no unit label. Street name, postal code,
// and city are required.
func NewAddress(unit string, streetNumber int, streetName, postalCode, city string) (*Address, error) {
	if unit != "" && (len(unit) < minUnitLen || len(unit) > maxUnitLen) {
		return nil, fmt.Errorf("invalid unit number %q: %w", unit, ErrInvalidArgument)
	}

	if streetNumber < minStreetNumber || streetNumber > maxStreetNumber {
		return nil, fmt.Errorf("invalid street number %d: %w", streetNumber, ErrInvalidArgument)
	}

	if streetName == "" {
		return nil, fmt.Errorf("street name: %w", ErrMissingField)
	}
	if len(streetName) < minStreetLen || len(streetName) > maxStreetLen {
		return nil, fmt.Errorf("invalid street name %q: %w", streetName, ErrInvalidArgument)
	}

	if postalCode == "" {
		return nil, fmt.Errorf("postal code: %w", ErrMissingField)
	}
	if len(postalCode) < minPostalLen || len(postalCode) > maxPostalLen {
		return nil, fmt.Errorf("invalid postal code %q: %w", postalCode, ErrInvalidArgument)
	}

	if city == "" {
		return nil, fmt.Errorf("city: %w", ErrMissingField)
	}
	if len(city) < minCityLen || len(city) > maxCityLen {
		return nil, fmt.Errorf("invalid city %q: %w", city, ErrInvalidArgument)
	}

	return &Address{
		unit:         unit,
		streetNumber: streetNumber,
		streetName:   streetName,
		postalCode:   postalCode,
		city:         city,
	}, nil
}

// Unit returns the unit label, or "" when the address has none.
func (a *Address) Unit() string { return a.unit }

// StreetNumber returns the street number.
func (a *Address) StreetNumber() int { return a.streetNumber }

// StreetName returns the street name as supplied at construction.
func (a *Address) StreetName() string { return a.streetName }

// PostalCode returns the postal code.
func (a *Address) PostalCode() string { return a.postalCode }

// City returns the city name.
func (a *Address) City() string { return a.city }
