package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSetPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-price <id> <price>",
		Short: "Update a property's price",
		Long:  "Update the price of the property with the given id. The price must stay strictly positive.",
		Args:  cobra.ExactArgs(2),
		RunE:  runSetPrice,
	}
}

func runSetPrice(cmd *cobra.Command, args []string) error {
	id := args[0]

	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price: %s", args[1])
	}

	a, path, err := openCatalog()
	if err != nil {
		return err
	}

	p, ok := a.Property(id)
	if !ok {
		return fmt.Errorf("property %s not found", id)
	}

	if err := p.SetPrice(price); err != nil {
		return fmt.Errorf("updating price: %w", err)
	}

	if err := saveCatalog(path, a); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(recordFromProperty(p))
	}

	fmt.Printf("Property %s price set to $%s.\n", id, formatPrice(int64(p.Price())))
	return nil
}
