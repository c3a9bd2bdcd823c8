package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ww2site/internal/db"
	"github.com/ziadkadry99/ww2site/internal/querylog"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Show what visitors searched for",
	Long:  `Reports the most frequent searches recorded by the HTTP server, or the most recent ones with --recent.`,
	RunE:  runQueries,
}

func init() {
	queriesCmd.Flags().Int("limit", 20, "maximum number of rows")
	queriesCmd.Flags().Bool("recent", false, "list recent searches instead of the most frequent")
	queriesCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(queriesCmd)
}

func runQueries(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	recent, _ := cmd.Flags().GetBool("recent")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.DatabasePath); os.IsNotExist(err) {
		fmt.Println("No searches recorded yet. Run `ww2site serve` first.")
		return nil
	}

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening query log: %w", err)
	}
	defer database.Close()
	store := querylog.NewStore(database)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if recent {
		rows, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if jsonOutput {
			return enc.Encode(rows)
		}
		for _, q := range rows {
			fmt.Printf("  %s  %-30q %d result(s)\n", q.CreatedAt.Format("2006-01-02 15:04:05"), q.Query, q.ResultCount)
		}
		return nil
	}

	stats, err := store.Top(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return enc.Encode(stats)
	}
	if len(stats) == 0 {
		fmt.Println("No searches recorded yet.")
		return nil
	}
	for i, st := range stats {
		fmt.Printf("  %2d. %-30q %4d searches, %d without results (last %s)\n",
			i+1, st.Keyword, st.Count, st.Misses, st.LastSeenAt.Format("2006-01-02"))
	}
	return nil
}
