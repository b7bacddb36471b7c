package taskbar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/platform"
)

// Options configures a Control.
type Options struct {
	// MaxSize is the requested/maximum size used by Fit and auto-fit.
	MaxSize model.Size
	Sizing  Sizing

	// AutoFit recomputes the size from MaxSize on every taskbar change
	// before repositioning.
	AutoFit bool

	// QueueSize bounds both the raw event queue and the Changes channel.
	QueueSize int

	// RestoreParent puts the window back under its previous parent on Close.
	RestoreParent bool

	Logger *slog.Logger
}

// Control is a window embedded in the taskbar. Its regions, size and
// debounce state are owned by one goroutine; exported methods hand work to
// that goroutine and wait for the result.
type Control struct {
	shell      platform.Shell
	handle     platform.Handle
	prevParent platform.Handle
	opts       Options
	logger     *slog.Logger

	hook     platform.EventHook
	queue    *eventQueue
	requests chan func()
	changes  chan model.Change
	cancel   context.CancelFunc
	done     chan struct{}

	closeOnce sync.Once
	closeErr  error

	// owned by the loop goroutine
	regions  Regions
	size     model.Size
	maxSize  model.Size
	layout   model.Layout
	debounce Debouncer
	seq      uint64
}

// NewControl re-parents hwnd into the taskbar icon area, installs the event
// hook and starts tracking. regions must come from Locate; the Control keeps
// its own copy. Close must be called to release the hook.
func NewControl(ctx context.Context, shell platform.Shell, regions *Regions, hwnd platform.Handle, opts Options) (*Control, error) {
	if hwnd == 0 {
		return nil, fmt.Errorf("%w: zero window handle", platform.ErrWindowNotFound)
	}
	if opts.MaxSize.Width < 0 || opts.MaxSize.Height < 0 {
		return nil, fmt.Errorf("%w: negative max size %v", ErrInvalidGeometryRequest, opts.MaxSize)
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("hwnd", hwnd)

	prev, err := shell.SetParent(hwnd, regions.AppIcon.Handle)
	if err != nil {
		return nil, fmt.Errorf("reparent into %s: %w", regions.AppIcon.Class, err)
	}

	c := &Control{
		shell:      shell,
		handle:     hwnd,
		prevParent: prev,
		opts:       opts,
		logger:     logger,
		queue:      newEventQueue(opts.QueueSize, false, logger),
		requests:   make(chan func()),
		changes:    make(chan model.Change, opts.QueueSize),
		done:       make(chan struct{}),
		regions:    *regions,
		maxSize:    opts.MaxSize,
	}

	hook, err := hookToolbar(shell, &c.regions, c.queue)
	if err != nil {
		if _, perr := shell.SetParent(hwnd, prev); perr != nil {
			logger.Warn("restore parent after hook failure", "err", perr)
		}
		return nil, err
	}
	c.hook = hook

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	go c.loop(loopCtx)

	logger.Info("embedded in taskbar", "profile", regions.Profile, "toolbar_thread", regions.Toolbar.ThreadID)
	return c, nil
}

// Handle returns the embedded window.
func (c *Control) Handle() platform.Handle { return c.handle }

// Changes delivers one Change per coalesced taskbar change, after the
// control has been repositioned. Changes are dropped if nobody reads.
func (c *Control) Changes() <-chan model.Change { return c.changes }

// Dropped returns the number of raw events dropped because the queue was full.
func (c *Control) Dropped() uint64 { return c.queue.dropped.Load() }

func (c *Control) loop(ctx context.Context) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-c.queue.ch:
			c.handleEvent(ev)
		case req := <-c.requests:
			c.drain()
			req()
		}
	}
}

func (c *Control) handleEvent(ev model.WinEvent) {
	if c.debounce.Feed(ev.Kind) {
		c.onTaskbarChanged()
	}
}

// drain handles every queued event so a request sees all events raised
// before it was made.
func (c *Control) drain() {
	for {
		select {
		case ev := <-c.queue.ch:
			c.handleEvent(ev)
		default:
			return
		}
	}
}

func (c *Control) onTaskbarChanged() {
	c.seq++
	if c.opts.AutoFit {
		size, err := c.available()
		if err != nil {
			c.logger.Warn("auto-fit", "max_size", c.maxSize, "err", err)
		} else {
			c.size = size
		}
	}
	c.apply()

	change := model.Change{Seq: c.seq, At: time.Now(), Size: c.size}
	select {
	case c.changes <- change:
	default:
		c.logger.Warn("change channel full, dropping change", "seq", change.Seq)
	}
	c.logger.Debug("taskbar changed", "seq", change.Seq, "size", change.Size)
}

func (c *Control) available() (model.Size, error) {
	if err := c.regions.Refresh(c.shell); err != nil {
		return model.Size{}, err
	}
	return ComputeAvailableSize(&c.regions, c.maxSize, c.opts.Sizing)
}

func (c *Control) apply() {
	l, err := ApplyLayout(c.shell, &c.regions, c.handle, c.size, c.logger)
	if err != nil {
		c.logger.Warn("apply layout", "size", c.size, "err", err)
		return
	}
	c.layout = l
}

// do runs fn on the loop goroutine.
func (c *Control) do(ctx context.Context, fn func() error) error {
	reply := make(chan error, 1)
	req := func() { reply <- fn() }
	select {
	case c.requests <- req:
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RequestResize sets the control size and repositions it.
func (c *Control) RequestResize(ctx context.Context, size model.Size) error {
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("%w: negative size %v", ErrInvalidGeometryRequest, size)
	}
	return c.do(ctx, func() error {
		c.size = size
		l, err := ApplyLayout(c.shell, &c.regions, c.handle, size, c.logger)
		if err != nil {
			return err
		}
		c.layout = l
		return nil
	})
}

// Fit resizes the control to the available size for MaxSize and returns it.
func (c *Control) Fit(ctx context.Context) (model.Size, error) {
	var size model.Size
	err := c.do(ctx, func() error {
		s, err := c.available()
		if err != nil {
			return err
		}
		size = s
		c.size = s
		l, err := ApplyLayout(c.shell, &c.regions, c.handle, s, c.logger)
		if err != nil {
			return err
		}
		c.layout = l
		return nil
	})
	return size, err
}

// AvailableSize refreshes the regions and computes the available size for
// MaxSize without moving anything.
func (c *Control) AvailableSize(ctx context.Context) (model.Size, error) {
	var size model.Size
	err := c.do(ctx, func() error {
		s, err := c.available()
		size = s
		return err
	})
	return size, err
}

// SetMaxSize changes the requested/maximum size.
func (c *Control) SetMaxSize(ctx context.Context, size model.Size) error {
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("%w: negative max size %v", ErrInvalidGeometryRequest, size)
	}
	return c.do(ctx, func() error {
		c.maxSize = size
		return nil
	})
}

// State is a snapshot of a Control's geometry.
type State struct {
	Size    model.Size   `yaml:"size"     json:"size"`
	MaxSize model.Size   `yaml:"max_size" json:"max_size"`
	Layout  model.Layout `yaml:"layout"   json:"layout"`
	Regions Regions      `yaml:"regions"  json:"regions"`
	Changes uint64       `yaml:"changes"  json:"changes"`
}

// State returns a snapshot of the current geometry.
func (c *Control) State(ctx context.Context) (State, error) {
	var st State
	err := c.do(ctx, func() error {
		st = State{Size: c.size, MaxSize: c.maxSize, Layout: c.layout, Regions: c.regions, Changes: c.seq}
		return nil
	})
	return st, err
}

// Close stops tracking, releases the hook and optionally restores the
// original parent. It is safe to call more than once.
func (c *Control) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()
		<-c.done

		var errs []error
		if err := c.hook.Close(); err != nil {
			errs = append(errs, fmt.Errorf("release hook: %w", err))
		}
		if c.opts.RestoreParent {
			if _, err := c.shell.SetParent(c.handle, c.prevParent); err != nil {
				errs = append(errs, fmt.Errorf("restore parent: %w", err))
			}
		}
		c.closeErr = errors.Join(errs...)
		c.logger.Info("released from taskbar", "changes", c.seq, "dropped", c.queue.dropped.Load())
	})
	return c.closeErr
}
