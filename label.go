package shapes

// LabelText is the content every Label draws.
const LabelText = "Ben"

// Label draws LabelText at (Left, Top) using the canvas text state.
// Width and Height are always nil.
type Label struct {
	Base
	Text string
}

// NewLabel returns a Label positioned at (x, y).
func NewLabel(x, y float64, styles Styles) *Label {
	return &Label{
		Base: Base{Left: x, Top: y, Styles: styles},
		Text: LabelText,
	}
}

// DrawShape implements Shape.
func (l *Label) DrawShape(c Canvas) error {
	c.FillText(l.Text, l.Left, l.Top)
	return nil
}
