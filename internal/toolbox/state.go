package toolbox

// Output placeholders standing in for a failed transform.
const (
	OutputInvalid      = "Invalid"
	OutputNotAvailable = "N/A"
)

// State is the whole of the toolbox UI state.
type State struct {
	Tool      Tool
	Direction Direction // only meaningful when Tool.HasDirection()
	Input     string
	Output    string
}

// DefaultState is URL encoding with empty text.
func DefaultState() State {
	return State{
		Tool:      ToolURLEncoding,
		Direction: DirectionEncode,
	}
}
