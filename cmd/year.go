package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ww2site/internal/catalog"
)

var yearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Print the page covering a year of the war",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("year must be a number, got %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		page, ok := cat.ByYear(year)
		if !ok {
			return fmt.Errorf("no page for %d (looked for %s)", year, catalog.YearLocator(year))
		}
		fmt.Printf("%s\n%s\n", page.Title, page.Locator)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(yearCmd)
}
