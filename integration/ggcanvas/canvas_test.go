// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/style"
	"github.com/gogpu/shapes/recording"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func newWhiteCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h, WithBackground(color.White))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -2 && diff <= 2
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	if got := pixel(img, x, y); !near(got, want) {
		t.Errorf("pixel(%d, %d) = %v, want %v", x, y, got, want)
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := New(size[0], size[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestNewInvalidFontData(t *testing.T) {
	_, err := New(10, 10, WithFontData([]byte("not a font"), nil))
	if err == nil {
		t.Fatal("New with garbage font data succeeded, want error")
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0, 0) did not panic")
		}
	}()
	MustNew(0, 0)
}

func TestRenderRectangle(t *testing.T) {
	c := newWhiteCanvas(t, 100, 100)

	r := shapes.NewRectangle(10, 20, 30, 40, shapes.Styles{"fillStyle": "red"})
	if err := shapes.Render(c, r); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := c.Image()
	assertPixel(t, img, 25, 40, red)
	assertPixel(t, img, 5, 5, white)
	assertPixel(t, img, 50, 70, white)
	if c.Depth() != 0 {
		t.Errorf("Depth() = %d after render, want 0", c.Depth())
	}
}

func TestRenderCircle(t *testing.T) {
	c := newWhiteCanvas(t, 100, 100)

	circle := shapes.NewCircle(50, 50, 20, shapes.Styles{"fillStyle": "#0000ff"})
	if err := shapes.Render(c, circle); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := c.Image()
	assertPixel(t, img, 50, 50, blue)
	assertPixel(t, img, 50, 35, blue)
	assertPixel(t, img, 50, 80, white)
	// Corner of the bounding box lies outside the circle.
	assertPixel(t, img, 33, 33, white)
}

func TestRenderLabel(t *testing.T) {
	c := newWhiteCanvas(t, 100, 60)

	label := shapes.NewLabel(10, 40, shapes.Styles{"font": "bold 24px sans-serif", "fillStyle": "black"})
	if err := shapes.Render(c, label); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := c.Image()
	inked := 0
	for y := 10; y <= 45; y++ {
		for x := 8; x <= 90; x++ {
			if pixel(img, x, y).R < 128 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("label drew no dark pixels")
	}
	assertPixel(t, img, 95, 55, white)
}

func TestStylesRestoredBetweenRenders(t *testing.T) {
	c := newWhiteCanvas(t, 100, 100)

	if err := shapes.Render(c, shapes.NewRectangle(0, 0, 20, 20, shapes.Styles{"fillStyle": "red"})); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// No styles: must draw with the default black, not the leaked red.
	if err := shapes.Render(c, shapes.NewRectangle(50, 50, 20, 20, nil)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := c.Image()
	assertPixel(t, img, 10, 10, red)
	assertPixel(t, img, 60, 60, black)
}

func TestNilAndUnknownStylesIgnored(t *testing.T) {
	c := newWhiteCanvas(t, 40, 40)

	styles := shapes.Styles{"fillStyle": nil, "shadowBlur": 4, "lineWidth": "bogus"}
	if err := shapes.Render(c, shapes.NewRectangle(0, 0, 40, 40, styles)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertPixel(t, c.Image(), 20, 20, black)
}

func TestGlobalAlphaZeroDrawsNothing(t *testing.T) {
	c := newWhiteCanvas(t, 40, 40)

	styles := shapes.Styles{"fillStyle": "red", "globalAlpha": 0}
	if err := shapes.Render(c, shapes.NewRectangle(0, 0, 40, 40, styles)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertPixel(t, c.Image(), 20, 20, white)
}

func TestSetPropertyInvalid(t *testing.T) {
	c := newWhiteCanvas(t, 10, 10)

	tests := []struct {
		name  string
		value any
	}{
		{"fillStyle", 12},
		{"fillStyle", "#12"},
		{"lineWidth", 0},
		{"textAlign", "middle"},
		{"font", "huge"},
	}
	for _, tt := range tests {
		if err := c.SetProperty(tt.name, tt.value); !errors.Is(err, style.ErrInvalidValue) {
			t.Errorf("SetProperty(%s, %v) = %v, want ErrInvalidValue", tt.name, tt.value, err)
		}
	}
	if c.st.fill != gg.Black {
		t.Errorf("fill changed by rejected value: %+v", c.st.fill)
	}
}

func TestSetPropertyState(t *testing.T) {
	c := newWhiteCanvas(t, 10, 10)

	c.Save()
	for name, value := range map[string]any{
		"lineWidth":      3,
		"lineCap":        "round",
		"lineJoin":       "bevel",
		"miterLimit":     2.5,
		"lineDashOffset": 1,
		"globalAlpha":    0.5,
		"strokeStyle":    "green",
		"textAlign":      "center",
		"font":           "20px serif",
	} {
		if err := c.SetProperty(name, value); err != nil {
			t.Fatalf("SetProperty(%s): %v", name, err)
		}
	}
	if c.st.lineWidth != 3 || c.st.alpha != 0.5 || c.st.font.Size != 20 || c.st.align != style.AlignCenter {
		t.Errorf("state not updated: %+v", c.st)
	}

	c.Restore()
	if c.st.lineWidth != 1 || c.st.alpha != 1 || c.st.font.Size != 10 || c.st.align != style.AlignStart {
		t.Errorf("state not restored: %+v", c.st)
	}
}

func TestRestoreWithoutSave(t *testing.T) {
	c := newWhiteCanvas(t, 10, 10)
	c.Restore()
	if c.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", c.Depth())
	}
}

func TestArcPartialSweep(t *testing.T) {
	c := newWhiteCanvas(t, 100, 100)
	if err := c.SetProperty("fillStyle", "red"); err != nil {
		t.Fatal(err)
	}

	// Lower half disc: clockwise from 0 to π in screen coordinates.
	c.BeginPath()
	c.Arc(50, 50, 30, 0, 3.14159265, false)
	c.ClosePath()
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	img := c.Image()
	assertPixel(t, img, 50, 65, red)
	assertPixel(t, img, 50, 35, white)
}

func TestPlaybackOntoCanvas(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	if err := shapes.Render(rec, shapes.NewRectangle(10, 10, 20, 20, shapes.Styles{"fillStyle": "blue"})); err != nil {
		t.Fatalf("Render: %v", err)
	}

	c := newWhiteCanvas(t, 100, 100)
	if err := rec.FinishRecording().Playback(c); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	assertPixel(t, c.Image(), 20, 20, blue)
}

func TestEncodePNG(t *testing.T) {
	c := newWhiteCanvas(t, 16, 16)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("EncodePNG output is not a PNG")
	}
}

func TestClosedCanvas(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}

	if c.Context() != nil {
		t.Error("Context() should be nil after Close")
	}
	if err := c.FillRect(0, 0, 1, 1); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("FillRect after Close = %v, want ErrCanvasClosed", err)
	}
	if err := c.Fill(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Fill after Close = %v, want ErrCanvasClosed", err)
	}
	if err := c.SetProperty("fillStyle", "red"); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("SetProperty after Close = %v, want ErrCanvasClosed", err)
	}
	if err := c.EncodePNG(&bytes.Buffer{}); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("EncodePNG after Close = %v, want ErrCanvasClosed", err)
	}
	if img := c.Image(); img != nil {
		t.Errorf("Image() after Close = %T, want nil", img)
	}
	if err := shapes.Render(c, shapes.NewRectangle(0, 0, 1, 1, nil)); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Render after Close = %v, want ErrCanvasClosed", err)
	}
}

func TestStrokeStateDoesNotAffectFill(t *testing.T) {
	c := newWhiteCanvas(t, 40, 40)
	st := shapes.Styles{
		"fillStyle":      "blue",
		"strokeStyle":    "red",
		"lineWidth":      12,
		"lineJoin":       "round",
		"lineDashOffset": 3,
	}
	if err := shapes.Render(c, shapes.NewRectangle(10, 10, 20, 20, st)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := c.Image()
	assertPixel(t, img, 20, 20, blue)
	assertPixel(t, img, 6, 20, white)
	assertPixel(t, img, 20, 34, white)
}
