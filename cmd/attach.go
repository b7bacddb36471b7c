package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Embed a window into the taskbar and keep it positioned",
	Long: `Re-parent a window into the taskbar next to the notification area, shrink the
toolbar to make room and keep both positioned as the taskbar changes.

The window is found by --hwnd, --class or --title (first match wins, in that
order). Width and height are the requested size (default max_size from the
config); the sizing rule turns them into the applied size unless --exact is set.

Events are streamed as JSONL to stdout regardless of --format:
  {"type":"attached", ...}   once, after the first layout
  {"type":"change", ...}     once per coalesced taskbar change
  {"type":"detached", ...}   on exit

Use Ctrl+C or --duration to stop. The window is put back under its previous
parent on exit unless --keep is set.`,
	RunE: runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
	attachCmd.Flags().String("title", "", "Find the window by exact title")
	attachCmd.Flags().String("class", "", "Find the window by class name")
	attachCmd.Flags().String("hwnd", "", "Window handle (decimal or 0x hex)")
	addSizeFlags(attachCmd, "Requested")
	attachCmd.Flags().String("sizing", "", "Sizing mode: fill-gap, aspect (default from config)")
	attachCmd.Flags().Bool("exact", false, "Use width and height as-is instead of the sizing rule")
	attachCmd.Flags().Bool("auto-fit", false, "Re-apply the sizing rule on every taskbar change (default from config)")
	attachCmd.Flags().Bool("keep", false, "Leave the window in the taskbar on exit")
	attachCmd.Flags().Duration("duration", 0, "Stop after this long (0 = until Ctrl+C)")
}

func runAttach(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	class, _ := cmd.Flags().GetString("class")
	hwndStr, _ := cmd.Flags().GetString("hwnd")
	exact, _ := cmd.Flags().GetBool("exact")
	keep, _ := cmd.Flags().GetBool("keep")
	duration, _ := cmd.Flags().GetDuration("duration")

	size := getSizeFlags(cmd, appConfig.MaxSize)
	mode, err := getSizing(cmd)
	if err != nil {
		return err
	}
	autoFit := appConfig.AutoFit
	if cmd.Flags().Changed("auto-fit") {
		autoFit, _ = cmd.Flags().GetBool("auto-fit")
	}
	if exact {
		autoFit = false
	}

	shell, err := newShell()
	if err != nil {
		return err
	}
	hwnd, err := findTarget(shell, hwndStr, class, title)
	if err != nil {
		return err
	}
	regions, err := locateRegions(shell)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	ctrl, err := taskbar.NewControl(ctx, shell, regions, hwnd, taskbar.Options{
		MaxSize:       size,
		Sizing:        mode,
		AutoFit:       autoFit,
		QueueSize:     appConfig.QueueSize,
		RestoreParent: appConfig.RestoreParent && !keep,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if exact {
		err = ctrl.RequestResize(ctx, size)
	} else {
		_, err = ctrl.Fit(ctx)
	}
	if err != nil {
		return fmt.Errorf("initial layout: %w", err)
	}

	stream := output.NewStream(os.Stdout)
	st, err := ctrl.State(ctx)
	if err != nil {
		return err
	}
	stream.Emit("attached", map[string]interface{}{
		"window": describeWindow(shell, ctrl.Handle(), class, title),
		"size":   st.Size,
		"layout": st.Layout,
	})

	return followChanges(ctx, ctrl, stream, st)
}

// followChanges emits a change line per coalesced change until ctx is done,
// then releases ctrl and emits the detached summary. Changes already
// delivered when ctx ends are still reported.
func followChanges(ctx context.Context, ctrl *taskbar.Control, stream *output.Stream, st taskbar.State) error {
	var lastSeq uint64
	emit := func(ch model.Change) {
		lastSeq = ch.Seq
		if s, err := ctrl.State(ctx); err == nil {
			st = s
		}
		stream.Emit("change", map[string]interface{}{
			"seq":    ch.Seq,
			"size":   ch.Size,
			"layout": st.Layout,
		})
	}

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			for pending := true; pending; {
				select {
				case ch := <-ctrl.Changes():
					emit(ch)
				default:
					pending = false
				}
			}
			dropped := ctrl.Dropped()
			if err := ctrl.Close(); err != nil {
				logger.Warn("detach", "err", err)
			}
			return stream.Emit("detached", map[string]interface{}{
				"changes":  lastSeq,
				"dropped":  dropped,
				"duration": time.Since(start).Round(time.Millisecond).String(),
			})
		case ch := <-ctrl.Changes():
			emit(ch)
		}
	}
}
