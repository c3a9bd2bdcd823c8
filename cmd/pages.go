package cmd

import (
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List every page in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printPagesJSON(cat.Entries())
		}
		printPagesTable(cat.Entries())
		return nil
	},
}

func init() {
	pagesCmd.Flags().Bool("json", false, "output pages as JSON")
	rootCmd.AddCommand(pagesCmd)
}
