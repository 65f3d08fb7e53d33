package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price <min> <max>",
		Short: "List properties within a price range",
		Long:  "List properties priced between min and max USD, inclusive.",
		Args:  cobra.ExactArgs(2),
		RunE:  runPrice,
	}
}

func runPrice(cmd *cobra.Command, args []string) error {
	minUSD, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid minimum price: %s", args[0])
	}
	maxUSD, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid maximum price: %s", args[1])
	}

	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	props := a.InPriceRange(minUSD, maxUSD)

	if isJSON() {
		recs := make([]propertyRecord, 0, len(props))
		for _, p := range props {
			recs = append(recs, recordFromProperty(p))
		}
		return printJSON(recs)
	}

	return printPropertyTable(props)
}
