package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ww2site",
	Short: "World War II History: September 1, 1939 - September 2, 1945",
	Long: `World War II History: September 1, 1939 - September 2, 1945

ww2site builds and serves the World War II history website: a set of
year and topic pages with a keyword search over the page catalog. The
search is available from the command line, over HTTP and to AI agents
via MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".ww2site.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
