// Package shell defines the host windowing contract the widget consumes.
// The core never implements window chrome itself: dragging, resizing, and
// secondary-window management belong to whatever shell embeds the widget.
package shell

// ResizeDirection names the edge or corner a resize drag starts from.
type ResizeDirection string

const (
	ResizeEast      ResizeDirection = "East"
	ResizeNorth     ResizeDirection = "North"
	ResizeNorthEast ResizeDirection = "NorthEast"
	ResizeNorthWest ResizeDirection = "NorthWest"
	ResizeSouth     ResizeDirection = "South"
	ResizeSouthEast ResizeDirection = "SouthEast"
	ResizeSouthWest ResizeDirection = "SouthWest"
	ResizeWest      ResizeDirection = "West"
)

// WindowHost is the windowing surface provided by the embedding shell. Every
// call may fail; failures are reported to the user as a transient status and
// are never fatal.
type WindowHost interface {
	StartDragging() error
	StartResizeDragging(direction ResizeDirection) error
	OpenSettingsWindow() error
	FocusSettingsWindow() error
	CloseCurrentWindow() error
}
