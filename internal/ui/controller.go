package ui

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// PanelView is the part of a clock panel the controller writes to on each tick.
type PanelView interface {
	SetClock(timeText, dateText, offsetText string)
}

// SnapshotSource is the model as seen by the controller.
type SnapshotSource interface {
	Timezones() []engine.TimezoneEntry
	Snapshot(identifier string) (engine.ClockSnapshot, error)
}

// ControllerState is the lifecycle state of the refresh ticker.
type ControllerState int

const (
	StateStopped ControllerState = iota
	StateRunning
)

func (s ControllerState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Controller refreshes every clock panel on a fixed interval.
type Controller struct {
	Model    SnapshotSource
	Interval time.Duration

	// Dispatch runs the refresh pass on the UI thread. Defaults to fyne.Do.
	Dispatch func(func())

	entries []engine.TimezoneEntry
	panels  []PanelView

	mu     sync.Mutex
	state  ControllerState
	ticker *time.Ticker
	done   chan struct{}

	pending atomic.Bool
}

// NewController creates one panel per configured timezone, in order.
func NewController(model SnapshotSource, newPanel func(engine.TimezoneEntry) PanelView) *Controller {
	entries := model.Timezones()
	panels := make([]PanelView, 0, len(entries))
	for _, e := range entries {
		panels = append(panels, newPanel(e))
	}

	return &Controller{
		Model:    model,
		Interval: config.TickInterval,
		Dispatch: fyne.Do,
		entries:  entries,
		panels:   panels,
	}
}

// Panels returns the panels in configuration order.
func (c *Controller) Panels() []PanelView {
	return c.panels
}

// State reports whether the ticker is running.
func (c *Controller) State() ControllerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start refreshes all panels once, then every Interval until Stop.
// Calling Start while running does nothing.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.state == StateRunning {
		c.mu.Unlock()
		slog.Debug(config.MsgAlreadyRun, config.LogKeyComponent, config.CompTicker)
		return
	}
	c.state = StateRunning
	c.ticker = time.NewTicker(c.Interval)
	c.done = make(chan struct{})
	ticker, done := c.ticker, c.done
	c.mu.Unlock()

	c.RefreshAll()

	go c.loop(ticker, done)

	slog.Info(config.MsgTickerStart,
		config.LogKeyComponent, config.CompTicker,
		config.LogKeyInterval, c.Interval)
}

// Stop cancels future ticks. A refresh already dispatched still completes.
// Safe to call repeatedly.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateStopped {
		return
	}

	c.ticker.Stop()
	close(c.done)
	c.ticker, c.done = nil, nil
	c.state = StateStopped

	slog.Info(config.MsgTickerStop, config.LogKeyComponent, config.CompTicker)
}

// loop forwards ticks to the UI thread. At most one refresh is queued at a
// time; ticks arriving while one is pending are dropped.
func (c *Controller) loop(ticker *time.Ticker, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !c.pending.CompareAndSwap(false, true) {
				continue
			}
			c.Dispatch(func() {
				defer c.pending.Store(false)
				// A tick may race with Stop; drop it once stopped.
				select {
				case <-done:
					return
				default:
				}
				c.RefreshAll()
			})
		}
	}
}

// RefreshAll updates every panel with a fresh snapshot of its timezone.
// A timezone that fails to resolve shows placeholders on its own panel only.
func (c *Controller) RefreshAll() {
	start := time.Now()
	failed := 0

	for i, e := range c.entries {
		snap, err := c.Model.Snapshot(e.Identifier)
		if err != nil {
			failed++
			slog.Warn(config.MsgSnapshotFail,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyTimezone, e.Identifier,
				config.LogKeyError, err)
			snap = engine.PlaceholderSnapshot
		}
		c.panels[i].SetClock(snap.Time, snap.Date, snap.Offset)
	}

	slog.Debug(config.MsgRefreshDone,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(c.panels),
		config.LogKeyFailed, failed,
		config.LogKeyDuration, time.Since(start).Microseconds())
}
