package cmd

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/ww2site/internal/catalog"
	"github.com/ziadkadry99/ww2site/internal/config"
	"github.com/ziadkadry99/ww2site/internal/logging"
)

// loadConfig loads and validates the config and installs the logger it
// describes, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `ww2site init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	if _, err := logging.Setup(os.Stderr, level, string(cfg.Log.Format)); err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}
