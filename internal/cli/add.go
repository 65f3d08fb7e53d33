package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var rec propertyRecord

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a property to the catalog",
		Long:  "Add a property listing to the catalog. An existing listing with the same id is overwritten.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec.ID = args[0]
			return runAdd(rec)
		},
	}

	cmd.Flags().Float64Var(&rec.PriceUSD, "price", 0, "price in USD (required)")
	cmd.Flags().IntVar(&rec.Bedrooms, "bedrooms", 0, "number of bedrooms (required)")
	cmd.Flags().BoolVar(&rec.Pool, "pool", false, "property has a swimming pool")
	cmd.Flags().StringVar(&rec.Type, "type", "", "residence type: residence, commercial, or retail (required)")
	cmd.Flags().StringVar(&rec.Address.Unit, "unit", "", "unit label")
	cmd.Flags().IntVar(&rec.Address.StreetNumber, "number", 0, "street number (required)")
	cmd.Flags().StringVar(&rec.Address.StreetName, "street", "", "street name (required)")
	cmd.Flags().StringVar(&rec.Address.PostalCode, "postal", "", "postal code (required)")
	cmd.Flags().StringVar(&rec.Address.City, "city", "", "city name (required)")

	return cmd
}

func runAdd(rec propertyRecord) error {
	a, path, err := openCatalog()
	if err != nil {
		return err
	}

	p, err := buildProperty(rec)
	if err != nil {
		return fmt.Errorf("adding property: %w", err)
	}

	a.AddProperty(p)

	if err := saveCatalog(path, a); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(recordFromProperty(p))
	}

	fmt.Println("Property added.")
	printPropertySummary(p)
	return nil
}
