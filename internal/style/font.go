package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// FontSpec is the parsed form of a CSS font shorthand.
// Only the subset a canvas label needs is understood:
//
//	[italic|normal] [bold|<weight>] <size>(px|pt) [family...]
type FontSpec struct {
	Size   float64 // in pixels
	Bold   bool
	Family string
}

// ParseFont parses a CSS font shorthand such as "bold 16px sans-serif".
// A size is required.
func ParseFont(s string) (FontSpec, error) {
	var spec FontSpec
	fields := strings.Fields(s)
	for i, f := range fields {
		lf := strings.ToLower(f)
		switch {
		case lf == "bold" || lf == "bolder":
			spec.Bold = true
		case lf == "normal" || lf == "italic" || lf == "oblique":
		case isWeight(lf):
			w, _ := strconv.Atoi(lf)
			spec.Bold = w >= 600
		case strings.HasSuffix(lf, "px") || strings.HasSuffix(lf, "pt"):
			size, err := strconv.ParseFloat(lf[:len(lf)-2], 64)
			if err != nil || size <= 0 {
				return FontSpec{}, fmt.Errorf("%w: font size %q", ErrInvalidValue, f)
			}
			if strings.HasSuffix(lf, "pt") {
				size = size * 4 / 3
			}
			spec.Size = size
			spec.Family = strings.Join(fields[i+1:], " ")
			return spec, nil
		default:
			return FontSpec{}, fmt.Errorf("%w: font %q", ErrInvalidValue, s)
		}
	}
	return FontSpec{}, fmt.Errorf("%w: font %q has no size", ErrInvalidValue, s)
}

func isWeight(s string) bool {
	if len(s) != 3 || !strings.HasSuffix(s, "00") {
		return false
	}
	return s[0] >= '1' && s[0] <= '9'
}

// Align is a textAlign keyword resolved to a horizontal anchor.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// ParseAlign parses a textAlign keyword. "left" and "right" map to
// start and end; right-to-left text is not supported.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "start", "left":
		return AlignStart, nil
	case "center":
		return AlignCenter, nil
	case "end", "right":
		return AlignEnd, nil
	}
	return AlignStart, fmt.Errorf("%w: textAlign %q", ErrInvalidValue, s)
}

// Anchor returns the horizontal anchor for gg.Context.DrawStringAnchored.
func (a Align) Anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1
	}
	return 0
}

// ParseLineCap parses a lineCap keyword.
func ParseLineCap(s string) (gg.LineCap, error) {
	switch s {
	case "butt":
		return gg.LineCapButt, nil
	case "round":
		return gg.LineCapRound, nil
	case "square":
		return gg.LineCapSquare, nil
	}
	return gg.LineCapButt, fmt.Errorf("%w: lineCap %q", ErrInvalidValue, s)
}

// ParseLineJoin parses a lineJoin keyword.
func ParseLineJoin(s string) (gg.LineJoin, error) {
	switch s {
	case "miter":
		return gg.LineJoinMiter, nil
	case "round":
		return gg.LineJoinRound, nil
	case "bevel":
		return gg.LineJoinBevel, nil
	}
	return gg.LineJoinMiter, fmt.Errorf("%w: lineJoin %q", ErrInvalidValue, s)
}
