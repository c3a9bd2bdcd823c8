package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to ww2site! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = title

	catalogPrompt := promptui.Prompt{
		Label:   "Catalog file (leave blank for the built-in page list)",
		Default: "",
	}
	catalogFile, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog file: %w", err)
	}
	cfg.CatalogFile = catalogFile

	contentPrompt := promptui.Prompt{
		Label:   "Markdown content directory",
		Default: cfg.ContentDir,
	}
	if cfg.ContentDir, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)
	}

	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{string(LogFormatText), string(LogFormatJSON)},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = LogFormat(format)

	if cfg.CatalogFile != "" {
		if _, err := os.Stat(cfg.CatalogFile); os.IsNotExist(err) {
			fmt.Printf("\nNote: %s does not exist yet; create it before running ww2site build.\n", cfg.CatalogFile)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
