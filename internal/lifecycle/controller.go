// Package lifecycle restores the main window at startup and persists its
// geometry when the user closes it.
//
// The controller has two phases. In Running it restores state once and
// waits for a close request. The first close request moves it to Closing:
// the default close is suppressed, the geometry is captured and saved, and
// the application is terminated explicitly. Close requests that arrive while
// Closing pass through untouched.
package lifecycle

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/mj1618/tasktrees/internal/model"
	"github.com/mj1618/tasktrees/internal/platform"
	"go.uber.org/zap"
)

// Phase is the controller's lifecycle phase.
type Phase int

const (
	Running Phase = iota
	Closing
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Store is the persistence the controller needs.
type Store interface {
	ResolvePath() (string, error)
	Load(path string) (model.WindowState, bool)
	Save(path string, state model.WindowState) error
}

// Controller sequences restore and capture for one window. Close requests
// may arrive on any goroutine, and again from inside Exit.
type Controller struct {
	store  Store
	window platform.Window
	exiter platform.Exiter
	log    *zap.Logger

	mu    sync.RWMutex
	path  string
	phase atomic.Int32
}

// New creates a controller for window.
func New(store Store, window platform.Window, exiter platform.Exiter, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		store:  store,
		window: window,
		exiter: exiter,
		log:    log.Named("lifecycle"),
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return Phase(c.phase.Load()) }

// Path returns the state file path resolved by Startup.
func (c *Controller) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// Startup restores the persisted geometry and installs the close handler.
// It must run once, before the window is shown. The only error is a state
// path that cannot be resolved; window setter failures are logged.
func (c *Controller) Startup() error {
	if c.window == nil {
		return platform.ErrNoWindow
	}
	path, err := c.store.ResolvePath()
	if err != nil {
		return fmt.Errorf("resolve window state path: %w", err)
	}
	c.mu.Lock()
	c.path = path
	c.mu.Unlock()

	state, found := c.store.Load(path)
	if found {
		c.restore(state)
	} else {
		c.log.Info("no window state to restore, using toolkit defaults", zap.String("path", path))
	}

	c.window.OnCloseRequested(c.HandleCloseRequest)
	return nil
}

// restore applies size and position first so a maximized window still has
// a sensible geometry to return to when unmaximized.
func (c *Controller) restore(state model.WindowState) {
	size := platform.Size{Width: state.Width, Height: state.Height}
	pos := platform.Position{X: state.X, Y: state.Y}

	if err := c.window.SetSize(size); err != nil {
		c.log.Warn("failed to restore window size", zap.Stringer("size", size), zap.Error(err))
	}
	if err := c.window.SetPosition(pos); err != nil {
		c.log.Warn("failed to restore window position", zap.Stringer("position", pos), zap.Error(err))
	}
	if state.IsMaximized {
		if err := c.window.Maximize(); err != nil {
			c.log.Warn("failed to restore maximized state", zap.Error(err))
		}
	}
	c.log.Info("window state restored",
		zap.Stringer("size", size),
		zap.Stringer("position", pos),
		zap.Bool("maximized", state.IsMaximized),
	)
}

// HandleCloseRequest runs the close sequence. It returns only after the
// save attempt has finished and Exit has been called. Only the request that
// moves the controller out of Running does any work; no lock is held across
// Exit because the toolkit may dispatch the next request from inside it.
func (c *Controller) HandleCloseRequest(ev platform.CloseEvent) {
	if !c.phase.CompareAndSwap(int32(Running), int32(Closing)) {
		c.log.Debug("close requested while closing, letting it through")
		return
	}
	ev.PreventClose()

	path := c.Path()
	state := c.capture()
	if err := c.store.Save(path, state); err != nil {
		c.log.Error("failed to save window state", zap.String("path", path), zap.Error(err))
	}

	c.log.Info("exiting")
	c.exiter.Exit(0)
}

// capture reads the restore geometry. The maximized flag is the one from
// before unmaximizing, while the bounds are read after, because a maximized
// window reports the filled screen rather than its restore bounds.
func (c *Controller) capture() model.WindowState {
	state := model.DefaultWindowState()

	maximized, err := c.window.IsMaximized()
	if err != nil {
		c.log.Warn("failed to query maximized state", zap.Error(err))
	}
	state.IsMaximized = maximized

	if maximized {
		if err := c.window.Unmaximize(); err != nil {
			c.log.Warn("failed to unmaximize window", zap.Error(err))
		}
	}

	if size, err := c.window.OuterSize(); err != nil {
		c.log.Warn("failed to read window size", zap.Error(err))
	} else {
		state.Width, state.Height = size.Width, size.Height
	}
	if pos, err := c.window.OuterPosition(); err != nil {
		c.log.Warn("failed to read window position", zap.Error(err))
	} else {
		state.X, state.Y = pos.X, pos.Y
	}
	return state
}
