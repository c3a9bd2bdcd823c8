package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/ww2site/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the page search tools to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "ww2site MCP server started on stdio (pages=%d)\n", cat.Len())

		return mcpserver.NewServer(cat).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
