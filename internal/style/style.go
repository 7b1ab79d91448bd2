// Package style is the canvas property table shared by the canvas
// implementations: recognized property names, their defaults, and the
// coercion and validation of style values.
package style

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Recognized canvas state properties.
const (
	FillStyle      = "fillStyle"
	StrokeStyle    = "strokeStyle"
	LineWidth      = "lineWidth"
	LineCap        = "lineCap"
	LineJoin       = "lineJoin"
	MiterLimit     = "miterLimit"
	LineDashOffset = "lineDashOffset"
	GlobalAlpha    = "globalAlpha"
	Font           = "font"
	TextAlign      = "textAlign"
)

// ErrInvalidValue is returned when a value has the wrong kind or range
// for the property it is assigned to.
var ErrInvalidValue = errors.New("style: invalid value")

// Kind classifies the values a property accepts.
type Kind uint8

const (
	// KindColor accepts hex strings, CSS color names and color.Color.
	KindColor Kind = iota
	// KindNumber accepts any Go numeric value.
	KindNumber
	// KindEnum accepts one of a fixed set of keywords.
	KindEnum
	// KindFont accepts a CSS font shorthand.
	KindFont
)

var kinds = map[string]Kind{
	FillStyle:      KindColor,
	StrokeStyle:    KindColor,
	LineWidth:      KindNumber,
	LineCap:        KindEnum,
	LineJoin:       KindEnum,
	MiterLimit:     KindNumber,
	LineDashOffset: KindNumber,
	GlobalAlpha:    KindNumber,
	Font:           KindFont,
	TextAlign:      KindEnum,
}

// defaults are the initial values of a fresh canvas, as an HTML canvas
// reports them.
var defaults = map[string]any{
	FillStyle:      "#000000",
	StrokeStyle:    "#000000",
	LineWidth:      1.0,
	LineCap:        "butt",
	LineJoin:       "miter",
	MiterLimit:     10.0,
	LineDashOffset: 0.0,
	GlobalAlpha:    1.0,
	Font:           "10px sans-serif",
	TextAlign:      "start",
}

// Known reports whether name is a recognized canvas property.
func Known(name string) bool {
	_, ok := kinds[name]
	return ok
}

// KindOf returns the kind of a recognized property.
func KindOf(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

// Names returns the recognized property names in sorted order.
func Names() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns a fresh copy of the default property values.
func Defaults() map[string]any {
	m := make(map[string]any, len(defaults))
	for k, v := range defaults {
		m[k] = v
	}
	return m
}

// Number converts any Go numeric value to float64.
// NaN and infinities are rejected, as a canvas ignores them.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(n)
	case int:
		return finite(n)
	case int8:
		return finite(n)
	case int16:
		return finite(n)
	case int32:
		return finite(n)
	case int64:
		return finite(n)
	case uint:
		return finite(n)
	case uint8:
		return finite(n)
	case uint16:
		return finite(n)
	case uint32:
		return finite(n)
	case uint64:
		return finite(n)
	}
	return 0, false
}

func finite[T constraints.Integer | constraints.Float](v T) (float64, bool) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Validate checks value against the property name and returns it in
// normalized form:
//
//	color    -> gg.RGBA
//	number   -> float64
//	lineCap  -> gg.LineCap
//	lineJoin -> gg.LineJoin
//	textAlign-> Align
//	font     -> FontSpec
//
// Unknown names and malformed values yield an error wrapping
// ErrInvalidValue.
func Validate(name string, value any) (any, error) {
	kind, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown property %q", ErrInvalidValue, name)
	}

	switch kind {
	case KindColor:
		return ParseColor(value)
	case KindNumber:
		return validateNumber(name, value)
	case KindFont:
		s, ok := value.(string)
		if !ok {
			return nil, invalid(name, value)
		}
		return ParseFont(s)
	case KindEnum:
		s, ok := value.(string)
		if !ok {
			return nil, invalid(name, value)
		}
		switch name {
		case LineCap:
			return ParseLineCap(s)
		case LineJoin:
			return ParseLineJoin(s)
		case TextAlign:
			return ParseAlign(s)
		}
	}
	return nil, invalid(name, value)
}

func validateNumber(name string, value any) (float64, error) {
	n, ok := Number(value)
	if !ok {
		return 0, invalid(name, value)
	}
	switch name {
	case LineWidth, MiterLimit:
		if n <= 0 {
			return 0, invalid(name, value)
		}
	case GlobalAlpha:
		if n < 0 || n > 1 {
			return 0, invalid(name, value)
		}
	}
	return n, nil
}

func invalid(name string, value any) error {
	return fmt.Errorf("%w: %s = %v (%T)", ErrInvalidValue, name, value, value)
}
