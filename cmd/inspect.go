package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the taskbar regions",
	Long: `Locate the taskbar icon area, toolbar and notification area and print their
handles, owning thread/process ids, desktop and client rects.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// inspectResult is the output of the inspect command.
type inspectResult struct {
	Regions   *taskbar.Regions `yaml:"regions"   json:"regions"`
	Thickness int32            `yaml:"thickness" json:"thickness"`
	Gap       int32            `yaml:"gap"       json:"gap"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	shell, err := newShell()
	if err != nil {
		return err
	}
	r, err := locateRegions(shell)
	if err != nil {
		return err
	}
	return output.Print(inspectResult{Regions: r, Thickness: r.Thickness(), Gap: r.Gap()})
}
