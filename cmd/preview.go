package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/preview"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the taskbar layout to a PNG",
	Long: `Render the taskbar icon area with the notification area, the shrunken toolbar
and the planned control, as attach would place them. Nothing is moved.

The size goes through the sizing rule unless --exact is set.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("out", "o", "taskbar-preview.png", "Output PNG path")
	addSizeFlags(previewCmd, "Requested")
	previewCmd.Flags().String("sizing", "", "Sizing mode: fill-gap, aspect (default from config)")
	previewCmd.Flags().Bool("exact", false, "Use width and height as-is instead of the sizing rule")
}

func runPreview(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	exact, _ := cmd.Flags().GetBool("exact")
	size := getSizeFlags(cmd, appConfig.MaxSize)

	shell, err := newShell()
	if err != nil {
		return err
	}
	r, err := locateRegions(shell)
	if err != nil {
		return err
	}
	if !exact {
		mode, err := getSizing(cmd)
		if err != nil {
			return err
		}
		if size, err = taskbar.ComputeAvailableSize(r, size, mode); err != nil {
			return err
		}
	} else if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("%w: negative size %v", taskbar.ErrInvalidGeometryRequest, size)
	}

	img, err := preview.Render(r, taskbar.PlanLayout(r, size))
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := preview.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("preview written", "path", out, "size", size)
	return nil
}
