package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newStreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "street <name>",
		Short: "List addresses on a street",
		Long:  "List the addresses of properties on the named street. Matching ignores case.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStreet,
	}
}

func runStreet(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	addrs := a.OnStreet(name)

	if isJSON() {
		recs := make([]addressRecord, 0, len(addrs))
		for _, addr := range addrs {
			recs = append(recs, addressRecord{
				Unit:         addr.Unit(),
				StreetNumber: addr.StreetNumber(),
				StreetName:   addr.StreetName(),
				PostalCode:   addr.PostalCode(),
				City:         addr.City(),
			})
		}
		return printJSON(recs)
	}

	printAddressList(addrs)
	return nil
}
