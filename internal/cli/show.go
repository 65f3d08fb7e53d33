package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show property details",
		Long:  "Show full details for the property with the given id.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	p, ok := a.Property(id)
	if !ok {
		return fmt.Errorf("property %s not found", id)
	}

	if isJSON() {
		return printJSON(recordFromProperty(p))
	}

	printPropertySummary(p)
	return nil
}
