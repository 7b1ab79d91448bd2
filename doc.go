// Package shapes renders simple 2D shapes onto a canvas.
//
// # Overview
//
// A shape is a position, an optional size and a sparse map of canvas
// style properties. Rendering a shape is always the same four steps:
//
//	canvas.Save()
//	apply every non-nil, recognized style entry to the canvas
//	draw the variant-specific geometry
//	canvas.Restore()
//
// The skeleton lives in [Render]; a variant only supplies DrawShape.
//
// # Quick Start
//
//	c, _ := ggcanvas.New(200, 100)
//	defer c.Close()
//
//	rect := shapes.NewRectangle(10, 20, 30, 40, shapes.Styles{
//	    "fillStyle": "steelblue",
//	    "lineWidth": nil, // nil entries keep the canvas value
//	})
//	if err := shapes.Render(c, rect); err != nil {
//	    return err
//	}
//	c.SavePNG("rect.png")
//
// # Variants
//
//   - Rectangle: filled axis-aligned box at (Left, Top)
//   - Circle: filled circle centered at (Left, Top), radius Width
//   - Label: the text "Ben" drawn at (Left, Top)
//
// # Registry
//
// [DefaultRegistry] returns a name -> [Constructor] table holding every
// built-in variant, for creating shapes by name:
//
//	reg := shapes.DefaultRegistry()
//	s, err := reg.New("Circle", 50, 50, 20, 0, nil)
//
// # Canvases
//
// Any type implementing [Canvas] can be drawn on. Two are provided:
//
//   - integration/ggcanvas: rasterizes through github.com/gogpu/gg
//   - recording: records typed commands and replays them later
package shapes
