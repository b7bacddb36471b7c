package taskbar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform/simulated"
)

func waitHooks(t *testing.T, sh *simulated.Shell, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for sh.ActiveHooks() != n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d hooks", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatch_ReportsChanges(t *testing.T) {
	sh, r := newTestTaskbar(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan int32, 4)
	events := make(chan model.EventKind, 16)
	errc := make(chan error, 1)
	go func() {
		errc <- Watch(ctx, sh, r, WatchOptions{
			Logger:  discardLogger(),
			OnEvent: func(ev model.WinEvent) { events <- ev.Kind },
			OnChange: func(_ model.Change, regions *Regions) {
				changes <- regions.Notify.Desktop.Left
			},
		})
	}()
	waitHooks(t, sh, 1)

	sh.Resize(40, 300)
	select {
	case left := <-changes:
		if left != 1620 {
			t.Errorf("notify left after refresh: got %d, want 1620", left)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}
	if got := len(events); got != 2 {
		t.Errorf("raw events: got %d, want 2", got)
	}

	cancel()
	if err := <-errc; err != nil {
		t.Fatal(err)
	}
	if sh.ActiveHooks() != 0 {
		t.Error("hook should be released when Watch returns")
	}
}

func TestWatch_HookFailure(t *testing.T) {
	sh, r := newTestTaskbar(t)
	sh.FailHooks(simulated.ErrHooksDisabled)
	err := Watch(context.Background(), sh, r, WatchOptions{Logger: discardLogger()})
	if !errors.Is(err, ErrHookInstallFailed) {
		t.Errorf("expected ErrHookInstallFailed, got %v", err)
	}
}

func TestWatch_ReleaseErrorReturned(t *testing.T) {
	sh, r := newTestTaskbar(t)
	boom := errors.New("unhook failed")
	sh.FailUnhook(boom)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- Watch(ctx, sh, r, WatchOptions{Logger: discardLogger()}) }()
	waitHooks(t, sh, 1)
	cancel()

	if err := <-errc; !errors.Is(err, boom) {
		t.Errorf("expected release error, got %v", err)
	}
}

func TestWatch_SkipsChangeWhenRefreshFails(t *testing.T) {
	sh, r := newTestTaskbar(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes int
	reordered := make(chan struct{}, 1)
	errc := make(chan error, 1)
	go func() {
		errc <- Watch(ctx, sh, r, WatchOptions{
			Logger: discardLogger(),
			OnEvent: func(ev model.WinEvent) {
				if ev.Kind == model.EventObjectReorder {
					reordered <- struct{}{}
				}
			},
			OnChange: func(model.Change, *Regions) { changes++ },
		})
	}()
	waitHooks(t, sh, 1)

	_, _, notify := sh.Taskbar()
	sh.RemoveWindow(notify)
	sh.Emit(model.EventSystemMoveSizeEnd)
	sh.Emit(model.EventObjectReorder)
	select {
	case <-reordered:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reorder")
	}

	cancel()
	if err := <-errc; err != nil {
		t.Fatal(err)
	}
	if changes != 0 {
		t.Errorf("OnChange called %d times with stale regions", changes)
	}
}

func TestWatch_QueuesOnlyPairWithoutOnEvent(t *testing.T) {
	sh, r := newTestTaskbar(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan uint64, 1)
	go Watch(ctx, sh, r, WatchOptions{
		QueueSize: 2,
		Logger:    discardLogger(),
		OnChange:  func(ch model.Change, _ *Regions) { changes <- ch.Seq },
	})
	waitHooks(t, sh, 1)

	for i := 0; i < 200; i++ {
		sh.Emit(model.EventObjectLocationChange)
	}
	sh.Emit(model.EventSystemMoveSizeEnd)
	sh.Emit(model.EventObjectReorder)
	select {
	case seq := <-changes:
		if seq != 1 {
			t.Errorf("seq: got %d, want 1", seq)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("noise crowded out the move-end/reorder pair")
	}
}
