package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ww2site/internal/progress"
	"github.com/ziadkadry99/ww2site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static website",
	Long: `Renders every catalog page from the markdown content directory into
HTML, copies static assets and writes the search index.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Bool("serve", false, "start the HTTP server after building")
	buildCmd.Flags().Int("port", 0, "port for the HTTP server (defaults to server.port from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	generator := site.NewGenerator(cat, cfg.ContentDir, cfg.StaticDir, cfg.OutputDir, cfg.SiteTitle)
	generator.Exclude = cfg.Exclude
	generator.Reporter = progress.NewReporter()

	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static site generated: %s (%d pages)\n", cfg.OutputDir, pageCount)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Server.Port = port
		}
		return serveSite(cmd.Context(), cfg, cat)
	}
	return nil
}
