package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ww2site/internal/catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the site's pages by title or keyword",
	Long: `Lists every page whose title or keywords contain the query, ignoring
case, in site order. An empty or omitted query lists every page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	results := cat.Search(query)

	if jsonOutput {
		return printPagesJSON(results)
	}
	if len(results) == 0 {
		fmt.Println("No pages found.")
		return nil
	}
	fmt.Printf("Found %d page(s):\n\n", len(results))
	printPagesTable(results)
	return nil
}

func printPagesJSON(pages []catalog.PageEntry) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(pages)
}

func printPagesTable(pages []catalog.PageEntry) {
	for i, p := range pages {
		fmt.Printf("  %d. %s\n", i+1, p.Title)
		fmt.Printf("     %s\n", p.Locator)
		if len(p.Keywords) > 0 {
			fmt.Printf("     Keywords: %s\n", strings.Join(p.Keywords, ", "))
		}
		fmt.Println()
	}
}
