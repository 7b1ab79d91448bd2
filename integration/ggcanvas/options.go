// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// Transparent canvas with 10px default text
//	c, _ := ggcanvas.New(800, 600)
//
//	// White background, larger default text
//	c, _ := ggcanvas.New(800, 600,
//	    ggcanvas.WithBackground(color.White),
//	    ggcanvas.WithFontSize(16))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	background     color.Color
	fontSize       float64
	regular        []byte
	bold           []byte
	contextOptions []gg.ContextOption
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		fontSize: 10,
		regular:  goregular.TTF,
		bold:     gobold.TTF,
	}
}

// WithBackground clears the canvas to c on creation.
// Without it the canvas starts fully transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFontSize sets the size in pixels of the default font, used until
// the font property is assigned. Non-positive sizes are ignored.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithFontData replaces the regular and bold TrueType/OpenType font data.
// A nil slice keeps the corresponding Go font.
func WithFontData(regular, bold []byte) Option {
	return func(o *options) {
		if regular != nil {
			o.regular = regular
		}
		if bold != nil {
			o.bold = bold
		}
	}
}

// WithContextOptions passes options through to gg.NewContext, e.g. a
// custom gg.Renderer.
func WithContextOptions(opts ...gg.ContextOption) Option {
	return func(o *options) {
		o.contextOptions = append(o.contextOptions, opts...)
	}
}
