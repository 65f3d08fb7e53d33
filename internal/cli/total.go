package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show the total catalog value",
		Long:  "Show the sum of all property prices in the catalog.",
		Args:  cobra.NoArgs,
		RunE:  runTotal,
	}
}

func runTotal(cmd *cobra.Command, args []string) error {
	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	total := a.TotalValue()

	if isJSON() {
		return printJSON(map[string]interface{}{
			"agency":     a.Name(),
			"properties": a.Len(),
			"total_usd":  total,
		})
	}

	fmt.Printf("%s: %d properties, $%s total\n", a.Name(), a.Len(), formatPrice(int64(total)))
	return nil
}
