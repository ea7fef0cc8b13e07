// Package wails binds the platform window contract to the Wails v2 runtime.
//
// Wails hands out its runtime context only once the app has started, so a
// Window is created before wails.Run and bound in OnStartup. Close requests
// arrive through options.App.OnBeforeClose, which BeforeClose serves.
package wails

import (
	"context"
	"errors"
	"sync"

	"github.com/mj1618/tasktrees/internal/platform"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ErrNotBound is returned by window calls made before Bind.
var ErrNotBound = errors.New("wails window used before startup")

// Window implements platform.Window and platform.Exiter for the Wails main
// window. Wails sizes are device-independent pixels. Wails calls OnStartup
// and OnBeforeClose from its own goroutines, so the bound state is guarded.
type Window struct {
	mu      sync.RWMutex
	ctx     context.Context
	onClose platform.CloseHandler
}

// NewWindow returns an unbound window.
func NewWindow() *Window {
	return &Window{}
}

// Bind attaches the runtime context received in OnStartup.
func (w *Window) Bind(ctx context.Context) {
	w.mu.Lock()
	w.ctx = ctx
	w.mu.Unlock()
}

func (w *Window) bound() (context.Context, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.ctx == nil {
		return nil, ErrNotBound
	}
	return w.ctx, nil
}

func (w *Window) SetSize(size platform.Size) error {
	ctx, err := w.bound()
	if err != nil {
		return err
	}
	runtime.WindowSetSize(ctx, int(size.Width), int(size.Height))
	return nil
}

func (w *Window) SetPosition(pos platform.Position) error {
	ctx, err := w.bound()
	if err != nil {
		return err
	}
	runtime.WindowSetPosition(ctx, int(pos.X), int(pos.Y))
	return nil
}

func (w *Window) Maximize() error {
	ctx, err := w.bound()
	if err != nil {
		return err
	}
	runtime.WindowMaximise(ctx)
	return nil
}

func (w *Window) Unmaximize() error {
	ctx, err := w.bound()
	if err != nil {
		return err
	}
	runtime.WindowUnmaximise(ctx)
	return nil
}

func (w *Window) IsMaximized() (bool, error) {
	ctx, err := w.bound()
	if err != nil {
		return false, err
	}
	return runtime.WindowIsMaximised(ctx), nil
}

func (w *Window) OuterSize() (platform.Size, error) {
	ctx, err := w.bound()
	if err != nil {
		return platform.Size{}, err
	}
	width, height := runtime.WindowGetSize(ctx)
	return platform.Size{Width: platform.ClampUint32(width), Height: platform.ClampUint32(height)}, nil
}

func (w *Window) OuterPosition() (platform.Position, error) {
	ctx, err := w.bound()
	if err != nil {
		return platform.Position{}, err
	}
	x, y := runtime.WindowGetPosition(ctx)
	return platform.Position{X: platform.ClampInt32(x), Y: platform.ClampInt32(y)}, nil
}

// Show makes the window visible. The app starts hidden so the restored
// geometry is in place before the first frame.
func (w *Window) Show() error {
	ctx, err := w.bound()
	if err != nil {
		return err
	}
	runtime.WindowShow(ctx)
	return nil
}

func (w *Window) OnCloseRequested(handler platform.CloseHandler) {
	w.mu.Lock()
	w.onClose = handler
	w.mu.Unlock()
}

// BeforeClose is installed as options.App.OnBeforeClose. It reports whether
// the handler suppressed the close. The handler runs without the lock held
// because Exit may re-enter BeforeClose.
func (w *Window) BeforeClose(_ context.Context) (prevent bool) {
	w.mu.RLock()
	handler := w.onClose
	w.mu.RUnlock()
	if handler == nil {
		return false
	}
	ev := &closeEvent{}
	handler(ev)
	return ev.prevented
}

// Exit quits the Wails application. Wails always exits with status 0, so
// code is only honored as 0.
func (w *Window) Exit(code int) {
	ctx, err := w.bound()
	if err != nil {
		return
	}
	runtime.Quit(ctx)
}

type closeEvent struct {
	prevented bool
}

func (e *closeEvent) PreventClose() { e.prevented = true }

var (
	_ platform.Window = (*Window)(nil)
	_ platform.Exiter = (*Window)(nil)
)
