package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "taskbar-embed",
	Short: "Embed a window into the Windows taskbar",
	Long: `Re-parent an existing window into the Windows taskbar and keep it sized and
positioned next to the notification area as the taskbar changes.

Use --simulate to run any command against an in-memory taskbar.`,
	SilenceUsage: true,
}

// Resolved by PersistentPreRunE for the running command.
var (
	appConfig config.Config
	logger    *slog.Logger
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	pf := rootCmd.PersistentFlags()
	pf.String("format", "yaml", "Output format: yaml, json")
	pf.Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")
	pf.String("config", "", "Config file (default "+config.DefaultPath()+")")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.Bool("simulate", false, "Use an in-memory taskbar with one demo window instead of the OS shell")
	pf.String("sim-screen", "1920x1080", "Simulated screen size (WxH)")
	pf.Int32("sim-thickness", 40, "Simulated taskbar thickness in pixels")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		path, _ := rootCmd.PersistentFlags().GetString("config")
		conf, err := config.Load(path)
		if err != nil {
			return err
		}
		if lvl, _ := rootCmd.PersistentFlags().GetString("log-level"); lvl != "" {
			conf.LogLevel = lvl
		}
		level, err := config.ParseLevel(conf.LogLevel)
		if err != nil {
			return err
		}
		appConfig = conf
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	}
}
