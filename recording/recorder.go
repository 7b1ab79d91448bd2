package recording

import (
	"fmt"
	"slices"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/style"
)

// Ensure Recorder implements shapes.Canvas.
var _ shapes.Canvas = (*Recorder)(nil)

// Recorder captures canvas calls as commands.
// Use FinishRecording to obtain an immutable Recording that can be
// inspected or replayed onto another canvas.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	_ = shapes.Render(rec, shapes.NewRectangle(10, 20, 30, 40, nil))
//	recording := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// Current state
	props map[string]any

	// State stack
	stateStack []map[string]any
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with the default state of an HTML canvas: black
// fill and stroke, 1px lines, butt caps, miter joins, 10px sans-serif.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 64),
		props:      style.Defaults(),
		stateStack: make([]map[string]any, 0, 8),
	}
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// Commands recorded afterwards do not reach the returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: slices.Clone(r.commands),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Commands returns the commands recorded so far.
// The returned slice is a copy.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Depth returns the number of saved states not yet restored.
func (r *Recorder) Depth() int {
	return len(r.stateStack)
}

// Property returns the current value of a state property, as it was
// last assigned. The boolean is false for unknown properties.
func (r *Recorder) Property(name string) (any, bool) {
	v, ok := r.props[name]
	return v, ok
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save saves the current state to the stack.
func (r *Recorder) Save() {
	saved := make(map[string]any, len(r.props))
	for k, v := range r.props {
		saved[k] = v
	}
	r.stateStack = append(r.stateStack, saved)

	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved state.
// If the state stack is empty, this is a no-op and nothing is recorded.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		shapes.Logger().Warn("recording: Restore without matching Save")
		return
	}

	r.props = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]

	r.commands = append(r.commands, RestoreCommand{})
}

// HasProperty reports whether name is a recognized canvas property.
func (r *Recorder) HasProperty(name string) bool {
	return style.Known(name)
}

// SetProperty assigns a state property. Values that fail validation are
// neither stored nor recorded.
func (r *Recorder) SetProperty(name string, value any) error {
	if _, err := style.Validate(name, value); err != nil {
		return err
	}
	r.props[name] = value
	r.commands = append(r.commands, SetPropertyCommand{Name: name, Value: value})
	return nil
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(x, y, w, h float64) error {
	r.commands = append(r.commands, FillRectCommand{X: x, Y: y, Width: w, Height: h})
	return nil
}

// BeginPath records the start of a new path.
func (r *Recorder) BeginPath() {
	r.commands = append(r.commands, BeginPathCommand{})
}

// Arc records a circular arc.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	r.commands = append(r.commands, ArcCommand{
		X:                x,
		Y:                y,
		Radius:           radius,
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		CounterClockwise: counterclockwise,
	})
}

// ClosePath records closing the current subpath.
func (r *Recorder) ClosePath() {
	r.commands = append(r.commands, ClosePathCommand{})
}

// Fill records a fill of the current path.
func (r *Recorder) Fill() error {
	r.commands = append(r.commands, FillCommand{})
	return nil
}

// FillText records a text draw.
func (r *Recorder) FillText(text string, x, y float64) {
	r.commands = append(r.commands, FillTextCommand{Text: text, X: x, Y: y})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded canvas commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// CommandsOf returns the recorded commands of concrete type T in order.
//
//	rects := recording.CommandsOf[recording.FillRectCommand](r)
func CommandsOf[T Command](r *Recording) []T {
	var out []T
	for _, cmd := range r.commands {
		if c, ok := cmd.(T); ok {
			out = append(out, c)
		}
	}
	return out
}

// Playback replays the recording onto c.
// Property assignments the target does not support or rejects are
// skipped, as shapes.ApplyStyles does. Playback stops at the first
// drawing error and reports the failing command. Saves replayed before
// the failure are restored, so the target's state stack stays balanced.
func (r *Recording) Playback(c shapes.Canvas) error {
	shapes.Logger().Debug("recording: playback", "commands", len(r.commands))

	open := 0
	for i, cmd := range r.commands {
		var err error
		switch cmd := cmd.(type) {
		case SaveCommand:
			c.Save()
			open++
		case RestoreCommand:
			c.Restore()
			if open > 0 {
				open--
			}
		case SetPropertyCommand:
			if !c.HasProperty(cmd.Name) {
				continue
			}
			if perr := c.SetProperty(cmd.Name, cmd.Value); perr != nil {
				shapes.Logger().Debug("recording: skip property", "property", cmd.Name, "error", perr)
			}
		case FillRectCommand:
			err = c.FillRect(cmd.X, cmd.Y, cmd.Width, cmd.Height)
		case BeginPathCommand:
			c.BeginPath()
		case ArcCommand:
			c.Arc(cmd.X, cmd.Y, cmd.Radius, cmd.StartAngle, cmd.EndAngle, cmd.CounterClockwise)
		case ClosePathCommand:
			c.ClosePath()
		case FillCommand:
			err = c.Fill()
		case FillTextCommand:
			c.FillText(cmd.Text, cmd.X, cmd.Y)
		}
		if err != nil {
			for ; open > 0; open-- {
				c.Restore()
			}
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
