package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging the config file over the defaults.
Use --defaults to print the built-in defaults, a starting point for a config file.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if defaults, _ := cmd.Flags().GetBool("defaults"); defaults {
		return output.Print(config.Default())
	}
	return output.Print(appConfig)
}
