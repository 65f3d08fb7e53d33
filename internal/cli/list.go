package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all properties",
		Long:  "List every property in the catalog, in identifier order.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	props := a.Properties()

	if isJSON() {
		recs := make([]propertyRecord, 0, len(props))
		for _, p := range props {
			recs = append(recs, recordFromProperty(p))
		}
		return printJSON(recs)
	}

	return printPropertyTable(props)
}
