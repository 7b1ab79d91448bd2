package shapes

// Rectangle is a filled axis-aligned box with its upper-left corner at
// (Left, Top).
type Rectangle struct {
	Base
}

// NewRectangle returns a Rectangle with the upper-left corner at (x, y).
func NewRectangle(x, y, width, height float64, styles Styles) *Rectangle {
	return &Rectangle{Base: Base{
		Left:   x,
		Top:    y,
		Width:  extent(width),
		Height: extent(height),
		Styles: styles,
	}}
}

// DrawShape implements Shape.
func (r *Rectangle) DrawShape(c Canvas) error {
	return c.FillRect(r.Left, r.Top, valueOf(r.Width), valueOf(r.Height))
}
