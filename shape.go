package shapes

import (
	"errors"
	"log/slog"
	"sort"
)

// ErrUnimplemented is returned by Base.DrawShape. It signals a shape type
// that embeds Base without providing its own DrawShape.
var ErrUnimplemented = errors.New("shapes: DrawShape not implemented")

// Styles maps canvas property names to values.
//
// Values are numbers (any Go numeric type), strings, or nil. A nil value
// keeps whatever the canvas currently has. Keys the canvas does not
// recognize are ignored.
type Styles map[string]any

// Shape is implemented by every drawable variant.
type Shape interface {
	// Attrs returns the attributes shared by all variants.
	Attrs() *Base

	// DrawShape draws the variant geometry with the canvas state already
	// styled. It must not call Save or Restore.
	DrawShape(c Canvas) error
}

// Base holds the attributes common to every shape. Variants embed it and
// override DrawShape.
//
// Width and Height are nil when the variant does not use that axis.
type Base struct {
	Left   float64
	Top    float64
	Width  *float64
	Height *float64
	Styles Styles
}

// Attrs implements Shape.
func (b *Base) Attrs() *Base { return b }

// DrawShape implements Shape. It always fails with ErrUnimplemented.
func (b *Base) DrawShape(Canvas) error { return ErrUnimplemented }

// ApplyStyles sets the shape's styles on c. See ApplyStyles.
func (b *Base) ApplyStyles(c Canvas) { ApplyStyles(c, b.Styles) }

// Render draws s on c: it saves the canvas state, applies the shape
// styles, draws the shape and restores the state. Restore runs on every
// exit path, including when DrawShape returns an error or panics.
func Render(c Canvas, s Shape) error {
	c.Save()
	defer c.Restore()

	attrs := s.Attrs()
	ApplyStyles(c, attrs.Styles)

	Logger().Debug("shapes: render", "shape", shapeName(s), "left", attrs.Left, "top", attrs.Top)
	return s.DrawShape(c)
}

// ApplyStyles assigns every style entry to c whose value is non-nil and
// whose key c recognizes. Entries are applied in key order.
//
// ApplyStyles never fails: unknown keys and nil values are skipped, and a
// value the canvas rejects is logged and skipped.
func ApplyStyles(c Canvas, styles Styles) {
	if len(styles) == 0 {
		return
	}

	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log := Logger()
	for _, k := range keys {
		v := styles[k]
		if v == nil {
			continue
		}
		if !c.HasProperty(k) {
			log.Debug("shapes: skip unknown style", "property", k)
			continue
		}
		if err := c.SetProperty(k, v); err != nil {
			log.Debug("shapes: skip style", "property", k, slog.Any("error", err))
		}
	}
}

func shapeName(s Shape) string {
	switch s.(type) {
	case *Rectangle:
		return "Rectangle"
	case *Circle:
		return "Circle"
	case *Label:
		return "Label"
	case *Base:
		return "Base"
	}
	return "custom"
}

func extent(v float64) *float64 { return &v }

func valueOf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
