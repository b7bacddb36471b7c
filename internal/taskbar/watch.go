package taskbar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// WatchOptions configures Watch. Callbacks run on the caller's goroutine.
type WatchOptions struct {
	QueueSize int

	// OnEvent is called for every raw event received.
	OnEvent func(model.WinEvent)

	// OnChange is called once per coalesced change, after regions have
	// been refreshed.
	OnChange func(model.Change, *Regions)

	Logger *slog.Logger
}

// Watch hooks the toolbar thread and reports coalesced changes until ctx
// is done, without embedding anything. A change whose refresh fails is
// logged and not reported.
func Watch(ctx context.Context, shell platform.Shell, regions *Regions, opts WatchOptions) (err error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	q := newEventQueue(opts.QueueSize, opts.OnEvent != nil, logger)
	hook, err := hookToolbar(shell, regions, q)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := hook.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release hook: %w", cerr)
		}
	}()

	var d Debouncer
	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-q.ch:
			if opts.OnEvent != nil {
				opts.OnEvent(ev)
			}
			if !d.Feed(ev.Kind) {
				continue
			}
			seq++
			if err := regions.Refresh(shell); err != nil {
				logger.Warn("refresh regions, change skipped", "seq", seq, "err", err)
				continue
			}
			if opts.OnChange != nil {
				opts.OnChange(model.Change{Seq: seq, At: time.Now()}, regions)
			}
		}
	}
}
