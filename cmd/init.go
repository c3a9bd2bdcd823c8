package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ww2site/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ww2site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes the config file (default .ww2site.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
