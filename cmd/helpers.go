package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
	"github.com/mj1618/taskbar-embed/internal/platform/simulated"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

// Demo window created in the simulated shell so attach has a target.
const (
	simDemoTitle = "taskbar-embed demo"
	simDemoClass = "TaskbarEmbedDemo"
	simDemoPID   = 9000
)

// newShell returns the OS shell, or a simulated one when --simulate is set.
func newShell() (platform.Shell, error) {
	sim, _ := rootCmd.PersistentFlags().GetBool("simulate")
	if !sim {
		provider, err := platform.NewProvider()
		if err != nil {
			return nil, err
		}
		if provider.Shell == nil {
			return nil, fmt.Errorf("shell not available on this platform")
		}
		return provider.Shell, nil
	}

	screen, _ := rootCmd.PersistentFlags().GetString("sim-screen")
	thickness, _ := rootCmd.PersistentFlags().GetInt32("sim-thickness")
	size, err := platform.ParseSize(screen)
	if err != nil {
		return nil, fmt.Errorf("--sim-screen: %w", err)
	}
	if thickness <= 0 || thickness >= size.Height {
		return nil, fmt.Errorf("--sim-thickness %d out of range for screen %v", thickness, size)
	}
	cfg := simulated.DefaultConfig()
	cfg.ScreenWidth, cfg.ScreenHeight, cfg.Thickness = size.Width, size.Height, thickness
	sh := simulated.New(cfg)
	sh.AddWindow(simDemoClass, simDemoTitle, simDemoPID, model.Rect{Left: 100, Top: 100, Right: 420, Bottom: 180})
	return sh, nil
}

// locateRegions finds the taskbar with the configured profiles and reads
// its current rects.
func locateRegions(shell platform.Shell) (*taskbar.Regions, error) {
	r, err := taskbar.Locate(shell, appConfig.Profiles)
	if err != nil {
		return nil, err
	}
	if err := r.Refresh(shell); err != nil {
		return nil, err
	}
	logger.Debug("taskbar located", "profile", r.Profile, "thickness", r.Thickness(), "gap", r.Gap())
	return r, nil
}

// addSizeFlags registers --width and --height.
func addSizeFlags(cmd *cobra.Command, what string) {
	cmd.Flags().Int32("width", 0, what+" width in pixels")
	cmd.Flags().Int32("height", 0, what+" height in pixels")
}

// getSizeFlags reads --width and --height, falling back to def for flags
// not given on the command line.
func getSizeFlags(cmd *cobra.Command, def model.Size) model.Size {
	size := def
	if cmd.Flags().Changed("width") {
		size.Width, _ = cmd.Flags().GetInt32("width")
	}
	if cmd.Flags().Changed("height") {
		size.Height, _ = cmd.Flags().GetInt32("height")
	}
	return size
}

// getSizing reads --sizing, defaulting to the configured mode.
func getSizing(cmd *cobra.Command) (taskbar.Sizing, error) {
	s := appConfig.Sizing
	if cmd.Flags().Changed("sizing") {
		s, _ = cmd.Flags().GetString("sizing")
	}
	return taskbar.ParseSizing(s)
}

// findTarget resolves the window to embed from --hwnd, --class or --title.
func findTarget(shell platform.Shell, hwndStr, class, title string) (platform.Handle, error) {
	switch {
	case hwndStr != "":
		return platform.ParseHandle(hwndStr)
	case class != "":
		h, err := shell.FindWindow(0, class)
		if err != nil {
			return 0, fmt.Errorf("window with class %q: %w", class, err)
		}
		return h, nil
	case title != "":
		h, err := shell.FindWindowByTitle(title)
		if err != nil {
			return 0, fmt.Errorf("window titled %q: %w", title, err)
		}
		return h, nil
	default:
		return 0, fmt.Errorf("--title, --class, or --hwnd is required")
	}
}

// describeWindow collects what the shell knows about h.
func describeWindow(shell platform.Shell, h platform.Handle, class, title string) model.Window {
	w := model.Window{Handle: uintptr(h), Class: class, Title: title}
	if _, pid, err := shell.WindowThreadProcessID(h); err == nil {
		w.PID = pid
	}
	if r, err := shell.WindowRect(h); err == nil {
		w.Bounds = r.Bounds()
	}
	return w
}
