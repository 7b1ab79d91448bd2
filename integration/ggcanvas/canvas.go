// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/style"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")
)

// Ensure Canvas implements shapes.Canvas and io.Closer.
var (
	_ shapes.Canvas = (*Canvas)(nil)
	_ io.Closer     = (*Canvas)(nil)
)

// state is the drawing state saved and restored by Save/Restore.
// gg shares a single brush between fill and stroke, so colors are kept
// here and pushed into the context right before each draw.
type state struct {
	fill       gg.RGBA
	stroke     gg.RGBA
	lineWidth  float64
	lineCap    gg.LineCap
	lineJoin   gg.LineJoin
	miterLimit float64
	dashOffset float64
	alpha      float64
	font       style.FontSpec
	align      style.Align
}

type faceKey struct {
	bold bool
	size float64
}

// Canvas is a shapes.Canvas that rasterizes through gg.
type Canvas struct {
	ctx     *gg.Context
	st      state
	stack   []state
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
	width   int
	height  int
	closed  bool
}

// New creates a Canvas of the given size.
//
// Returns an error if the dimensions are invalid or the font data cannot
// be parsed.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	regular, err := text.NewFontSource(o.regular)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(o.bold)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("ggcanvas: load bold font: %w", err)
	}

	ctx := gg.NewContext(width, height, o.contextOptions...)
	if o.background != nil {
		ctx.ClearWithColor(gg.FromColor(o.background))
	}

	return &Canvas{
		ctx: ctx,
		st: state{
			fill:       gg.Black,
			stroke:     gg.Black,
			lineWidth:  1,
			lineCap:    gg.LineCapButt,
			lineJoin:   gg.LineJoinMiter,
			miterLimit: 10,
			alpha:      1,
			font:       style.FontSpec{Size: o.fontSize, Family: "sans-serif"},
			align:      style.AlignStart,
		},
		stack:   make([]state, 0, 8),
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]text.Face),
		width:   width,
		height:  height,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Close releases the gg context and font sources.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.faces = nil
	return errors.Join(c.ctx.Close(), c.regular.Close(), c.bold.Close())
}

// Context returns the underlying gg drawing context.
// Returns nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Depth returns the number of saved states not yet restored.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// Image returns the rendered pixels.
// Returns nil if the canvas is closed.
func (c *Canvas) Image() image.Image {
	if c.closed {
		return nil
	}
	return c.ctx.Image()
}

// SavePNG writes the rendered pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.SavePNG(path)
}

// EncodePNG writes the rendered pixels as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.EncodePNG(w)
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Save pushes the drawing state and the gg transform stack.
func (c *Canvas) Save() {
	if c.closed {
		return
	}
	c.stack = append(c.stack, c.st)
	c.ctx.Push()
}

// Restore pops the drawing state. An unmatched Restore is a no-op.
func (c *Canvas) Restore() {
	if c.closed {
		return
	}
	if len(c.stack) == 0 {
		shapes.Logger().Warn("ggcanvas: Restore without matching Save")
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ctx.Pop()
}

// HasProperty reports whether name is a recognized canvas property.
func (c *Canvas) HasProperty(name string) bool {
	return style.Known(name)
}

// SetProperty assigns a state property. A value that fails validation
// returns an error wrapping the style package's invalid-value error and
// leaves the state unchanged.
func (c *Canvas) SetProperty(name string, value any) error {
	if c.closed {
		return ErrCanvasClosed
	}
	v, err := style.Validate(name, value)
	if err != nil {
		return err
	}

	switch name {
	case style.FillStyle:
		c.st.fill = v.(gg.RGBA)
	case style.StrokeStyle:
		c.st.stroke = v.(gg.RGBA)
	case style.LineWidth:
		c.st.lineWidth = v.(float64)
	case style.LineCap:
		c.st.lineCap = v.(gg.LineCap)
	case style.LineJoin:
		c.st.lineJoin = v.(gg.LineJoin)
	case style.MiterLimit:
		c.st.miterLimit = v.(float64)
	case style.LineDashOffset:
		c.st.dashOffset = v.(float64)
	case style.GlobalAlpha:
		c.st.alpha = v.(float64)
	case style.Font:
		c.st.font = v.(style.FontSpec)
	case style.TextAlign:
		c.st.align = v.(style.Align)
	}
	return nil
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// FillRect fills an axis-aligned rectangle with the fill color.
// Any path under construction is discarded.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.ctx.ClearPath()
	c.ctx.DrawRectangle(x, y, w, h)
	c.applyFill()
	return c.ctx.Fill()
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	if c.closed {
		return
	}
	c.ctx.ClearPath()
}

// Arc adds a circular arc to the current path. A sweep of 2π or more
// adds a full circle. Negative radii are ignored.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	if c.closed || radius < 0 {
		return
	}
	if math.Abs(endAngle-startAngle) >= 2*math.Pi {
		c.ctx.DrawCircle(x, y, radius)
		return
	}
	if counterclockwise {
		startAngle, endAngle = endAngle, startAngle
	}
	c.ctx.DrawArc(x, y, radius, startAngle, endAngle)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if c.closed {
		return
	}
	c.ctx.ClosePath()
}

// Fill fills the current path with the fill color and clears it.
func (c *Canvas) Fill() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.applyFill()
	return c.ctx.Fill()
}

// FillText draws text with the fill color, the current font and the
// textAlign anchor. (x, y) is on the baseline.
func (c *Canvas) FillText(s string, x, y float64) {
	if c.closed || s == "" {
		return
	}
	c.ctx.SetFont(c.face(c.st.font))
	c.applyFill()
	c.ctx.DrawStringAnchored(s, x, y, c.st.align.Anchor(), 0)
}

// applyFill pushes the fill color, scaled by globalAlpha, into the gg context.
func (c *Canvas) applyFill() {
	col := c.st.fill
	col.A *= c.st.alpha
	c.ctx.SetFillBrush(gg.Solid(col))
}

// face returns a cached face for the font spec.
func (c *Canvas) face(f style.FontSpec) text.Face {
	key := faceKey{bold: f.Bold, size: f.Size}
	if face, ok := c.faces[key]; ok {
		return face
	}
	src := c.regular
	if f.Bold {
		src = c.bold
	}
	face := src.Face(f.Size)
	c.faces[key] = face
	return face
}
