// Package platform defines the window toolkit contract consumed by the
// lifecycle controller. Toolkit bindings live in subpackages.
package platform

import "errors"

// ErrNoWindow is returned when the toolkit cannot hand out the main window.
var ErrNoWindow = errors.New("main window not available")

// Window is the subset of a toolkit window the controller needs.
// All methods are called on the toolkit's event-dispatch thread.
type Window interface {
	SetSize(size Size) error
	SetPosition(pos Position) error
	Maximize() error
	Unmaximize() error
	IsMaximized() (bool, error)

	// OuterSize and OuterPosition include OS decorations.
	OuterSize() (Size, error)
	OuterPosition() (Position, error)

	// OnCloseRequested registers the handler invoked once per close attempt.
	// A later registration replaces the earlier one.
	OnCloseRequested(handler CloseHandler)
}

// CloseEvent is delivered to a CloseHandler when the user or OS asks the
// window to close.
type CloseEvent interface {
	// PreventClose suppresses the toolkit's default close action.
	PreventClose()
}

// CloseHandler handles a close request synchronously.
type CloseHandler func(ev CloseEvent)

// Exiter terminates the application.
type Exiter interface {
	Exit(code int)
}

// ExitFunc adapts a plain function to Exiter.
type ExitFunc func(code int)

// Exit calls f(code).
func (f ExitFunc) Exit(code int) { f(code) }
