package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream taskbar change events as JSONL",
	Long: `Hook the taskbar's toolbar thread and emit one JSON line per coalesced change
(a move/size end followed by a reorder). Nothing is embedded or moved.

With --raw every hook event is emitted too. Output is always JSONL regardless
of the --format flag.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("raw", false, "Also emit every raw hook event")
	watchCmd.Flags().Duration("duration", 0, "Stop after this long (0 = until Ctrl+C)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")
	duration, _ := cmd.Flags().GetDuration("duration")

	shell, err := newShell()
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

	stream := output.NewStream(os.Stdout)
	stream.Emit("snapshot", map[string]interface{}{
		"profile":   regions.Profile,
		"thickness": regions.Thickness(),
		"gap":       regions.Gap(),
	})

	opts := taskbar.WatchOptions{
		QueueSize: appConfig.QueueSize,
		Logger:    logger,
		OnChange: func(ch model.Change, r *taskbar.Regions) {
			stream.Emit("change", map[string]interface{}{
				"seq":       ch.Seq,
				"thickness": r.Thickness(),
				"gap":       r.Gap(),
				"toolbar":   r.Toolbar.Desktop,
				"notify":    r.Notify.Desktop,
			})
		},
	}
	if raw {
		opts.OnEvent = func(ev model.WinEvent) {
			stream.Emit("event", map[string]interface{}{
				"kind":   ev.Kind.String(),
				"hwnd":   ev.Hwnd,
				"object": ev.ObjectID,
				"thread": ev.ThreadID,
			})
		}
	}

	start := time.Now()
	if err := taskbar.Watch(ctx, shell, regions, opts); err != nil {
		return err
	}
	stream.Emit("done", map[string]interface{}{
		"emitted":  stream.Count(),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	})
	return nil
}
