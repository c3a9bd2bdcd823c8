package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ww2site/internal/catalog"
	"github.com/ziadkadry99/ww2site/internal/config"
	"github.com/ziadkadry99/ww2site/internal/db"
	"github.com/ziadkadry99/ww2site/internal/querylog"
	"github.com/ziadkadry99/ww2site/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server for the site and its search API",
	Long: `Serves the search API (/api/search, /api/pages, /api/years/{year}),
the query log (/api/queries/...) and, when it has been built, the static
site from output_dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Server.Port = port
		}
		if noLog, _ := cmd.Flags().GetBool("no-query-log"); noLog {
			cfg.DatabasePath = ""
		}

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		return serveSite(cmd.Context(), cfg, cat)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port from config)")
	serveCmd.Flags().Bool("no-query-log", false, "do not record search queries")
	rootCmd.AddCommand(serveCmd)
}

// serveSite runs the HTTP server until ctx is cancelled or SIGINT/SIGTERM arrives.
func serveSite(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) error {
	var queries *querylog.Store
	if cfg.DatabasePath != "" {
		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening query log: %w", err)
		}
		defer database.Close()
		queries = querylog.NewStore(database)
	}

	siteDir := ""
	if info, err := os.Stat(cfg.OutputDir); err == nil && info.IsDir() {
		siteDir = cfg.OutputDir
	} else {
		slog.Warn("built site not found, serving the API only", "output_dir", cfg.OutputDir)
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		SiteDir:  siteDir,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, cat, queries)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	fmt.Printf("Serving at http://localhost:%d (press Ctrl+C to stop)\n", cfg.Server.Port)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
