// Package agency provides the in-memory property registry and its
// query operations.
package agency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/calebreed/agencybook/internal/property"
)

const (
	minNameLen = 1
	maxNameLen = 31
)

// Agency owns a set of properties keyed by identifier. It is not safe
// for concurrent use; callers sharing an Agency across goroutines must
// serialize access themselves.
type Agency struct {
	name       string
	properties map[string]*property.Property
}

// New creates an empty agency with the given name (1-31 characters).
func New(name string) (*Agency, error) {
	if len(name) < minNameLen || len(name) > maxNameLen {
		return nil, fmt.Errorf("invalid agency name %q: %w", name, property.ErrInvalidArgument)
	}
	return &Agency{
		name:       name,
		properties: make(map[string]*property.Property),
	}, nil
}

// Name returns the agency name.
func (a *Agency) Name() string { return a.name }

// Len returns the number of registered properties.
func (a *Agency) Len() int { return len(a.properties) }

// AddProperty registers p under its identifier. A nil property is
// ignored; an existing entry with the same identifier is overwritten,
// last write wins.
func (a *Agency) AddProperty(p *property.Property) {
	if p == nil {
		return
	}
	a.properties[p.ID()] = p
}

// RemoveProperty deletes the property with the given identifier.
// Removing an unknown identifier is a no-op.
func (a *Agency) RemoveProperty(id string) {
	delete(a.properties, id)
}

// Property returns the property with the given identifier, if any.
func (a *Agency) Property(id string) (*property.Property, bool) {
	p, ok := a.properties[id]
	return p, ok
}

// Properties returns all registered properties in ascending identifier
// order.
func (a *Agency) Properties() []*property.Property {
	props := make([]*property.Property, 0, len(a.properties))
	for _, id := range a.sortedIDs() {
		props = append(props, a.properties[id])
	}
	return props
}

// TotalValue returns the sum of all stored prices in USD, 0 for an
// empty agency.
func (a *Agency) TotalValue() float64 {
	var total float64
	for _, p := range a.properties {
		total += p.Price()
	}
	return total
}

// WithPool returns the properties that have a swimming pool, in
// identifier order, or nil when none do.
func (a *Agency) WithPool() []*property.Property {
	var matches []*property.Property
	for _, id := range a.sortedIDs() {
		if p := a.properties[id]; p.HasPool() {
			matches = append(matches, p)
		}
	}
	return matches
}

// InPriceRange returns the properties priced between minUSD and maxUSD
// inclusive, in identifier order, or nil when none match.
func (a *Agency) InPriceRange(minUSD, maxUSD float64) []*property.Property {
	var matches []*property.Property
	for _, id := range a.sortedIDs() {
		p := a.properties[id]
		if p.Price() >= minUSD && p.Price() <= maxUSD {
			matches = append(matches, p)
		}
	}
	return matches
}

// OnStreet returns the addresses of properties on the named street
// (case-insensitive exact match), in identifier order, or nil when none
// match.
func (a *Agency) OnStreet(streetName string) []*property.Address {
	var matches []*property.Address
	for _, id := range a.sortedIDs() {
		addr := a.properties[id].Address()
		if strings.EqualFold(addr.StreetName(), streetName) {
			matches = append(matches, addr)
		}
	}
	return matches
}

// WithBedroomsBetween returns the properties whose bedroom count lies
// between minBeds and maxBeds inclusive, keyed by identifier, or nil
// when none match.
func (a *Agency) WithBedroomsBetween(minBeds, maxBeds int) map[string]*property.Property {
	var matches map[string]*property.Property
	for id, p := range a.properties {
		if p.Bedrooms() >= minBeds && p.Bedrooms() <= maxBeds {
			if matches == nil {
				matches = make(map[string]*property.Property)
			}
			matches[id] = p
		}
	}
	return matches
}

// OfType returns the properties of the given residence type, in
// identifier order, or nil when none match.
func (a *Agency) OfType(t property.ResidenceType) []*property.Property {
	var matches []*property.Property
	for _, id := range a.sortedIDs() {
		if p := a.properties[id]; p.Type() == t {
			matches = append(matches, p)
		}
	}
	return matches
}

// sortedIDs returns all property identifiers in ascending order. Every
// scan walks the map in this order so query results and report
// numbering are deterministic.
func (a *Agency) sortedIDs() []string {
	ids := make([]string, 0, len(a.properties))
	for id := range a.properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
