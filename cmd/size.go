package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Compute the size available to an embedded control",
	Long: `Compute the size a control may occupy in the taskbar for a requested size.

Sizing modes:
  fill-gap   any non-empty request gets the full gap next to the tray (default)
  aspect     keep the request's aspect ratio, clamped to the taskbar thickness

Width and height default to max_size from the config file.`,
	RunE: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	addSizeFlags(sizeCmd, "Requested")
	sizeCmd.Flags().String("sizing", "", "Sizing mode: fill-gap, aspect (default from config)")
}

func runSize(cmd *cobra.Command, args []string) error {
	req := getSizeFlags(cmd, appConfig.MaxSize)
	mode, err := getSizing(cmd)
	if err != nil {
		return err
	}
	shell, err := newShell()
	if err != nil {
		return err
	}
	r, err := locateRegions(shell)
	if err != nil {
		return err
	}
	avail, err := taskbar.ComputeAvailableSize(r, req, mode)
	if err != nil {
		return err
	}
	return output.Print(output.SizeResult{
		Request:   req,
		Sizing:    mode.String(),
		Thickness: r.Thickness(),
		Gap:       r.Gap(),
		Available: avail,
	})
}
