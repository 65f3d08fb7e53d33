package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebreed/agencybook/internal/agency"
)

func newInitCmd() *cobra.Command {
	var setDefault bool

	cmd := &cobra.Command{
		Use:   "init <agency-name>",
		Short: "Create a new catalog file",
		Long:  "Create an empty catalog file for the named agency. Fails if the catalog already exists.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(strings.Join(args, " "), setDefault)
		},
	}

	cmd.Flags().BoolVar(&setDefault, "default", false, "record this catalog as the default in the config file")

	return cmd
}

func runInit(name string, setDefault bool) error {
	path, err := catalogPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("catalog already exists: %s", path)
	}

	a, err := agency.New(name)
	if err != nil {
		return err
	}

	if err := saveCatalog(path, a); err != nil {
		return err
	}

	if setDefault {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Catalog = path
		if err := saveConfig(cfg); err != nil {
			return err
		}
	}

	fmt.Printf("Created catalog for %q at %s\n", name, path)
	return nil
}
