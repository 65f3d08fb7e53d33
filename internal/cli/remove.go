package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a property from the catalog",
		Long:  "Remove the property with the given id. Removing an unknown id is a no-op.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, path, err := openCatalog()
	if err != nil {
		return err
	}

	_, found := a.Property(id)
	a.RemoveProperty(id)

	if err := saveCatalog(path, a); err != nil {
		return err
	}

	if found {
		fmt.Printf("Property %s removed.\n", id)
	} else {
		fmt.Printf("Property %s not in catalog, nothing removed.\n", id)
	}
	return nil
}
