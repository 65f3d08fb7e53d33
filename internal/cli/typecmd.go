package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <residence-type>",
		Short: "Report properties of a residence type",
		Long:  "Print the formatted listing report for a residence type (residence, commercial, or retail). Matching ignores case.",
		Args:  cobra.ExactArgs(1),
		RunE:  runType,
	}
}

func runType(cmd *cobra.Command, args []string) error {
	a, _, err := openCatalog()
	if err != nil {
		return err
	}

	lines := a.TypeReport(args[0])

	if isJSON() {
		return printJSON(lines)
	}

	for _, line := range lines {
		if strings.HasSuffix(line, "\n") {
			fmt.Print(line)
		} else {
			fmt.Println(line)
		}
	}
	return nil
}
