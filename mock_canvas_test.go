package shapes

import (
	"errors"
	"fmt"
)

const (
	fillStyle = "fillStyle"
	lineWidth = "lineWidth"
)

// mockCanvas is a minimal Canvas for testing. It logs every call and
// keeps two properties with a save stack.
type mockCanvas struct {
	calls []string
	props map[string]any
	stack []map[string]any

	fillErr error
}

func newMockCanvas() *mockCanvas {
	return &mockCanvas{props: map[string]any{fillStyle: "#000000", lineWidth: 1.0}}
}

func (m *mockCanvas) Save() {
	saved := make(map[string]any, len(m.props))
	for k, v := range m.props {
		saved[k] = v
	}
	m.stack = append(m.stack, saved)
	m.calls = append(m.calls, "Save")
}

func (m *mockCanvas) Restore() {
	if len(m.stack) > 0 {
		m.props = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
	}
	m.calls = append(m.calls, "Restore")
}

func (m *mockCanvas) HasProperty(name string) bool {
	_, ok := m.props[name]
	return ok
}

func (m *mockCanvas) SetProperty(name string, value any) error {
	if name == lineWidth {
		if _, ok := value.(float64); !ok {
			return errors.New("mock: lineWidth must be float64")
		}
	}
	m.props[name] = value
	m.calls = append(m.calls, fmt.Sprintf("Set %s=%v", name, value))
	return nil
}

func (m *mockCanvas) FillRect(x, y, w, h float64) error {
	m.calls = append(m.calls, fmt.Sprintf("FillRect %g %g %g %g", x, y, w, h))
	return m.fillErr
}

func (m *mockCanvas) BeginPath() { m.calls = append(m.calls, "BeginPath") }

func (m *mockCanvas) Arc(x, y, r, a0, a1 float64, ccw bool) {
	m.calls = append(m.calls, fmt.Sprintf("Arc %g %g %g %.4f %.4f %v", x, y, r, a0, a1, ccw))
}

func (m *mockCanvas) ClosePath() { m.calls = append(m.calls, "ClosePath") }

func (m *mockCanvas) Fill() error {
	m.calls = append(m.calls, "Fill")
	return m.fillErr
}

func (m *mockCanvas) FillText(text string, x, y float64) {
	m.calls = append(m.calls, fmt.Sprintf("FillText %s %g %g", text, x, y))
}

func (m *mockCanvas) count(call string) int {
	n := 0
	for _, c := range m.calls {
		if c == call {
			n++
		}
	}
	return n
}
