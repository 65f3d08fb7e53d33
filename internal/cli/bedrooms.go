package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebreed/agencybook/internal/property"
)

func newBedroomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bedrooms <min> <max>",
		Short: "List properties by bedroom count",
		Long:  "List properties whose bedroom count lies between min and max, inclusive.",
		Args:  cobra.ExactArgs(2),
		RunE:  runBedrooms,
	}
}

func runBedrooms(cmd *cobra.Command, args []string) error {
	minBeds, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid minimum bedrooms: %s", args[0])
	}
	maxBeds, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid maximum bedrooms: %s", args[1])
	}

	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	matches := a.WithBedroomsBetween(minBeds, maxBeds)

	ids := make([]string, 0, len(matches))
	for id := range matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if isJSON() {
		recs := make([]propertyRecord, 0, len(ids))
		for _, id := range ids {
			recs = append(recs, recordFromProperty(matches[id]))
		}
		return printJSON(recs)
	}

	props := make([]*property.Property, 0, len(ids))
	for _, id := range ids {
		props = append(props, matches[id])
	}
	return printPropertyTable(props)
}
