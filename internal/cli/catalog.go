package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/calebreed/agencybook/internal/agency"
	"github.com/calebreed/agencybook/internal/property"
)

// catalogFile is the on-disk YAML shape of an agency catalog. The same
// records double as the CLI's JSON output shape.
type catalogFile struct {
	Agency     string           `yaml:"agency" json:"agency"`
	Properties []propertyRecord `yaml:"properties" json:"properties"`
}

type propertyRecord struct {
	ID       string        `yaml:"id" json:"id"`
	PriceUSD float64       `yaml:"price_usd" json:"price_usd"`
	Bedrooms int           `yaml:"bedrooms" json:"bedrooms"`
	Pool     bool          `yaml:"pool" json:"pool"`
	Type     string        `yaml:"type" json:"type"`
	Address  addressRecord `yaml:"address" json:"address"`
}

type addressRecord struct {
	Unit         string `yaml:"unit,omitempty" json:"unit,omitempty"`
	StreetNumber int    `yaml:"street_number" json:"street_number"`
	StreetName   string `yaml:"street_name" json:"street_name"`
	PostalCode   string `yaml:"postal_code" json:"postal_code"`
	City         string `yaml:"city" json:"city"`
}

// loadCatalog reads a catalog file and builds an Agency from it. Every
// record goes through the validated constructors, so a malformed file
// fails with the same error kinds as direct construction.
func loadCatalog(path string) (*agency.Agency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	a, err := agency.New(file.Agency)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	for _, rec := range file.Properties {
		p, err := buildProperty(rec)
		if err != nil {
			return nil, fmt.Errorf("catalog %s, property %q: %w", path, rec.ID, err)
		}
		a.AddProperty(p)
	}

	return a, nil
}

// saveCatalog writes the agency back to the catalog file, properties in
// identifier order.
func saveCatalog(path string, a *agency.Agency) error {
	file := catalogFile{Agency: a.Name()}
	for _, p := range a.Properties() {
		file.Properties = append(file.Properties, recordFromProperty(p))
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating catalog directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	return nil
}

// buildProperty constructs a validated Property from a catalog record.
func buildProperty(rec propertyRecord) (*property.Property, error) {
	addr, err := property.NewAddress(
		rec.Address.Unit,
		rec.Address.StreetNumber,
		rec.Address.StreetName,
		rec.Address.PostalCode,
		rec.Address.City,
	)
	if err != nil {
		return nil, err
	}

	return property.NewProperty(rec.PriceUSD, addr, rec.Bedrooms, rec.Pool, rec.Type, rec.ID)
}

// recordFromProperty flattens a Property into its catalog record.
func recordFromProperty(p *property.Property) propertyRecord {
	addr := p.Address()
	return propertyRecord{
		ID:       p.ID(),
		PriceUSD: p.Price(),
		Bedrooms: p.Bedrooms(),
		Pool:     p.HasPool(),
		Type:     string(p.Type()),
		Address: addressRecord{
			Unit:         addr.Unit(),
			StreetNumber: addr.StreetNumber(),
			StreetName:   addr.StreetName(),
			PostalCode:   addr.PostalCode(),
			City:         addr.City(),
		},
	}
}
