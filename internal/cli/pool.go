package cli

import (
	"github.com/spf13/cobra"
)

func newPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool",
		Short: "List properties with a swimming pool",
		Args:  cobra.NoArgs,
		RunE:  runPool,
	}
}

func runPool(cmd *cobra.Command, args []string) error {
	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	props := a.WithPool()

	if isJSON() {
		recs := make([]propertyRecord, 0, len(props))
		for _, p := range props {
			recs = append(recs, recordFromProperty(p))
		}
		return printJSON(recs)
	}

	return printPropertyTable(props)
}
