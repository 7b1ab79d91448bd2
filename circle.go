package shapes

import "math"

// Circle is a filled circle centered at (Left, Top). Width holds the
// radius; Height is always nil.
type Circle struct {
	Base
}

// NewCircle returns a Circle centered at (cx, cy).
func NewCircle(cx, cy, radius float64, styles Styles) *Circle {
	return &Circle{Base: Base{
		Left:   cx,
		Top:    cy,
		Width:  extent(radius),
		Styles: styles,
	}}
}

// Radius returns the circle radius.
func (c *Circle) Radius() float64 { return valueOf(c.Width) }

// DrawShape implements Shape.
func (c *Circle) DrawShape(cv Canvas) error {
	cv.BeginPath()
	cv.Arc(c.Left, c.Top, c.Radius(), 0, 2*math.Pi, true)
	cv.ClosePath()
	return cv.Fill()
}
