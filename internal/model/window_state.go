package model

// Default geometry used when no persisted value is usable.
const (
	DefaultWidth  uint32 = 800
	DefaultHeight uint32 = 600
	DefaultX      int32  = 0
	DefaultY      int32  = 0
)

// WindowState is the persisted geometry of the main window.
// Width and height are the outer size; X and Y the outer position, which may
// point at a monitor that is no longer connected.
type WindowState struct {
	Width       uint32 `yaml:"width"        json:"width"`
	Height      uint32 `yaml:"height"       json:"height"`
	X           int32  `yaml:"x"            json:"x"`
	Y           int32  `yaml:"y"            json:"y"`
	IsMaximized bool   `yaml:"is_maximized" json:"is_maximized"`
}

// DefaultWindowState returns the state used for every field that is missing
// or invalid in the persisted file.
func DefaultWindowState() WindowState {
	return WindowState{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		X:      DefaultX,
		Y:      DefaultY,
	}
}
