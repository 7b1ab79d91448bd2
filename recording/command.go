package recording

// CommandType identifies the type of a command.
// Each command type corresponds to one canvas call.
type CommandType uint8

const (
	// State commands
	CmdSave        CommandType = iota // Save current state
	CmdRestore                        // Restore previous state
	CmdSetProperty                    // Assign a state property

	// Drawing commands
	CmdFillRect  // Fill a rectangle
	CmdBeginPath // Start a new path
	CmdArc       // Add a circular arc to the path
	CmdClosePath // Close the current subpath
	CmdFill      // Fill the current path
	CmdFillText  // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:        "Save",
	CmdRestore:     "Restore",
	CmdSetProperty: "SetProperty",
	CmdFillRect:    "FillRect",
	CmdBeginPath:   "BeginPath",
	CmdArc:         "Arc",
	CmdClosePath:   "ClosePath",
	CmdFill:        "Fill",
	CmdFillText:    "FillText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current canvas state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved canvas state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetPropertyCommand assigns a canvas state property.
type SetPropertyCommand struct {
	// Name is the property name, e.g. "fillStyle".
	Name string
	// Value is the value as it was passed to SetProperty.
	Value any
}

// Type implements Command.
func (SetPropertyCommand) Type() CommandType { return CmdSetProperty }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillRectCommand fills an axis-aligned rectangle.
type FillRectCommand struct {
	X, Y          float64
	Width, Height float64
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// ArcCommand adds a circular arc to the current path.
type ArcCommand struct {
	// X, Y is the arc center.
	X, Y   float64
	Radius float64
	// StartAngle and EndAngle are in radians.
	StartAngle float64
	EndAngle   float64
	// CounterClockwise selects the sweep direction.
	CounterClockwise bool
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// FillTextCommand draws text at a specified position.
type FillTextCommand struct {
	// Text is the string to render.
	Text string
	// X is the horizontal position.
	X float64
	// Y is the vertical position (baseline).
	Y float64
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }
