package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute control and toolbar placements without moving anything",
	Long: `Compute where a control of the given size would go and how far the toolbar
would shrink. Nothing is moved.

With --fit the size is first passed through the sizing rule, as attach does.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	addSizeFlags(planCmd, "Control")
	planCmd.Flags().Bool("fit", false, "Apply the sizing rule to the size first")
	planCmd.Flags().String("sizing", "", "Sizing mode for --fit: fill-gap, aspect (default from config)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	size := getSizeFlags(cmd, appConfig.MaxSize)
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("%w: negative size %v", taskbar.ErrInvalidGeometryRequest, size)
	}
	shell, err := newShell()
	if err != nil {
		return err
	}
	r, err := locateRegions(shell)
	if err != nil {
		return err
	}

	if fit, _ := cmd.Flags().GetBool("fit"); fit {
		mode, err := getSizing(cmd)
		if err != nil {
			return err
		}
		size, err = taskbar.ComputeAvailableSize(r, size, mode)
		if err != nil {
			return err
		}
	}
	return output.Print(output.PlanResult{Size: size, Layout: taskbar.PlanLayout(r, size)})
}
