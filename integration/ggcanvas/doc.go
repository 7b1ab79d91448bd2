// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas provides a shapes.Canvas backed by a gg software
// rasterizer.
//
// Canvas wraps a gg.Context and keeps the HTML-canvas style state that
// gg does not model directly (separate fill and stroke colors, global
// alpha, font and text alignment), so shapes can style and draw on it
// through the shapes.Canvas contract. The data flow is:
//
//	shapes.Render -> Canvas (state) -> gg.Context (draw) -> Pixmap
//
// # Usage
//
//	c, err := ggcanvas.New(200, 100, ggcanvas.WithBackground(color.White))
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	circle := shapes.NewCircle(50, 50, 20, shapes.Styles{"fillStyle": "tomato"})
//	if err := shapes.Render(c, circle); err != nil {
//	    return err
//	}
//	return c.SavePNG("circle.png")
//
// # Stroke State
//
// No shapes primitive strokes, so strokeStyle, lineWidth, lineCap,
// lineJoin, miterLimit and lineDashOffset are validated and kept as
// canvas state (saved and restored with the rest) but never reach gg.
//
// # Fonts
//
// Text is drawn with the Go fonts (golang.org/x/image/font/gofont) unless
// other font data is supplied with WithFontData. The family named in the
// font property is ignored; weight and size are honored.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package ggcanvas
