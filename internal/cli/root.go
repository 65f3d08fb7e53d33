// Package cli defines the cobra command tree for agencybook.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calebreed/agencybook/internal/agency"
	"github.com/calebreed/agencybook/internal/logging"
)

var (
	flagFile    string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "abk",
		Short:         "Manage a real-estate agency catalog",
		Long:          "A tool to manage an agency's property catalog. Add and remove listings, update prices, and run pool, price, street, bedroom, and type queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFile, "file", "", "catalog file path (default: ~/.config/abk/catalog.yaml)")
	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newShowCmd(),
		newSetPriceCmd(),
		newListCmd(),
		newTotalCmd(),
		newPoolCmd(),
		newPriceCmd(),
		newStreetCmd(),
		newBedroomsCmd(),
		newTypeCmd(),
		newVersionCmd(),
	)

	return root
}

// catalogPath resolves the catalog file path from the --file flag, the
// ABK_CATALOG environment variable, the config file, or the default.
func catalogPath() (string, error) {
	if flagFile != "" {
		return flagFile, nil
	}
	if v := os.Getenv("ABK_CATALOG"); v != "" {
		return v, nil
	}
	cfg, err := loadConfig()
	if err == nil && cfg.Catalog != "" {
		return cfg.Catalog, nil
	}
	return defaultCatalogPath()
}

// defaultCatalogPath returns ~/.config/abk/catalog.yaml.
func defaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "abk", "catalog.yaml"), nil
}

// openCatalog loads the catalog into an Agency, returning the resolved
// path for commands that write the file back.
func openCatalog() (*agency.Agency, string, error) {
	path, err := catalogPath()
	if err != nil {
		return nil, "", err
	}

	a, err := loadCatalog(path)
	if err != nil {
		return nil, "", err
	}

	slog.Debug("loaded catalog", "path", path, "agency", a.Name(), "properties", a.Len())
	return a, path, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
