package shapes

// Canvas is the drawing surface a shape renders onto.
//
// The contract mirrors the subset of the HTML canvas 2D context that
// shapes need: a save/restore state stack, introspectable state
// properties, and a handful of fill primitives.
//
// Canvases are NOT safe for concurrent use.
type Canvas interface {
	// Save pushes the current drawing state.
	Save()

	// Restore pops the most recently saved drawing state.
	Restore()

	// HasProperty reports whether name is a settable state property.
	HasProperty(name string) bool

	// SetProperty assigns a state property. A value of the wrong kind
	// or range returns an error and leaves the state unchanged.
	SetProperty(name string, value any) error

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64) error

	// BeginPath starts a new, empty path.
	BeginPath()

	// Arc adds a circular arc to the current path. Angles are in
	// radians, measured clockwise from the positive X axis.
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)

	// ClosePath closes the current subpath.
	ClosePath()

	// Fill fills the current path.
	Fill() error

	// FillText draws text with its baseline origin at (x, y).
	FillText(text string, x, y float64)
}
