package taskbar

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// DefaultQueueSize bounds the event queue between the hook callback and the
// consuming goroutine.
const DefaultQueueSize = 64

// eventQueue is the single-consumer channel fed by the hook callback. The
// callback never blocks: a full queue drops the event. Unless all is set,
// only the kinds the Debouncer reacts to are queued.
type eventQueue struct {
	ch      chan model.WinEvent
	all     bool
	dropped atomic.Uint64
	logger  *slog.Logger
}

func newEventQueue(size int, all bool, logger *slog.Logger) *eventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &eventQueue{ch: make(chan model.WinEvent, size), all: all, logger: logger}
}

// debounced reports whether kind can advance the Debouncer.
func debounced(kind model.EventKind) bool {
	return kind == model.EventSystemMoveSizeEnd || kind == model.EventObjectReorder
}

func (q *eventQueue) push(ev model.WinEvent) {
	if !q.all && !debounced(ev.Kind) {
		return
	}
	select {
	case q.ch <- ev:
	default:
		n := q.dropped.Add(1)
		q.logger.Warn("event queue full, dropping event", "kind", ev.Kind, "dropped", n)
	}
}

// hookToolbar installs a hook over the full event range, scoped to the
// toolbar's owning process and thread.
func hookToolbar(shell platform.Shell, r *Regions, q *eventQueue) (platform.EventHook, error) {
	target := platform.HookTarget{
		Min: model.EventMin,
		Max: model.EventMax,
		PID: r.Toolbar.ProcessID,
		TID: r.Toolbar.ThreadID,
	}
	hook, err := shell.HookEvents(target, q.push)
	if err != nil {
		return nil, fmt.Errorf("%w: thread %d: %w", ErrHookInstallFailed, target.TID, err)
	}
	return hook, nil
}
