// Package toolbox owns the toolbox state and routes each user action to the
// transform of the active tool.
package toolbox

import (
	"log/slog"
	"time"

	"github.com/Cyclone1070/devtoolbox/internal/transform"
)

// Controller holds the single State of the application. It is not safe for
// concurrent use; the UI drives it from its update loop.
type Controller struct {
	state State

	opts     transform.Options
	location *time.Location
	now      func() time.Time
	newUUID  func() (string, error)
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithTransforms sets the JSON and SQL formatting styles.
func WithTransforms(opts transform.Options) Option {
	return func(c *Controller) { c.opts = opts }
}

// WithLocation sets the zone used for the local Unix time rendering.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) { c.location = loc }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithUUIDGenerator replaces the UUID source.
func WithUUIDGenerator(gen func() (string, error)) Option {
	return func(c *Controller) { c.newUUID = gen }
}

// WithLogger sets the logger used for recovered transform failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates a Controller in DefaultState.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state:    DefaultState(),
		opts:     transform.DefaultOptions(),
		location: time.Local,
		now:      time.Now,
		newUUID:  transform.NewUUID,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Restore replaces the state, typically with a persisted snapshot. The
// output is recomputed from the restored input so it cannot disagree with
// it; a generated UUID is kept as is.
func (c *Controller) Restore(s State) {
	if !s.Tool.HasDirection() {
		s.Direction = DirectionEncode
	}
	if s.Tool == ToolUUID {
		s.Input = ""
	}
	c.state = s
	c.Recompute()
}

// SelectTool activates tool and clears both text fields.
func (c *Controller) SelectTool(tool Tool) {
	c.state.Tool = tool
	c.clearText()
}

// SelectDirection sets the codec direction and clears both text fields.
// It returns false, changing nothing, when the active tool has no direction.
func (c *Controller) SelectDirection(dir Direction) bool {
	if !c.state.Tool.HasDirection() {
		return false
	}
	c.state.Direction = dir
	c.clearText()
	return true
}

// ToggleDirection flips between Encode and Decode.
func (c *Controller) ToggleDirection() bool {
	if c.state.Direction == DirectionEncode {
		return c.SelectDirection(DirectionDecode)
	}
	return c.SelectDirection(DirectionEncode)
}

// Clear empties input and output without changing tool or direction.
func (c *Controller) Clear() {
	c.clearText()
}

// SetInput replaces the input text and recomputes the output. The UUID tool
// ignores input entirely.
func (c *Controller) SetInput(text string) {
	if c.state.Tool == ToolUUID {
		return
	}
	c.state.Input = text
	c.Recompute()
}

// Recompute derives the output from (tool, direction, input). Transform
// failures are replaced by the tool's placeholder output.
func (c *Controller) Recompute() {
	in := c.state.Input

	switch c.state.Tool {
	case ToolURLEncoding:
		if c.state.Direction == DirectionEncode {
			c.state.Output = transform.URLEncode(in)
			return
		}
		out, err := transform.URLDecode(in)
		c.setOutput(out, err, OutputInvalid)
	case ToolBase64:
		if c.state.Direction == DirectionEncode {
			c.state.Output = transform.Base64Encode(in)
			return
		}
		out, err := transform.Base64Decode(in)
		c.setOutput(out, err, "")
	case ToolJSONFormat:
		out, err := transform.FormatJSON(in, c.opts.JSON)
		c.setOutput(out, err, OutputInvalid)
	case ToolSQLFormat:
		c.state.Output = transform.FormatSQL(in, c.opts.SQL)
	case ToolUnixTime:
		// Rendered from the input on every frame, see Epoch.
		c.state.Output = ""
	case ToolUUID:
		// Only Generate writes the output.
	}
}

// Generate stores a fresh version 4 UUID as the output. It is a no-op for
// every other tool.
func (c *Controller) Generate() error {
	if c.state.Tool != ToolUUID {
		return nil
	}
	id, err := c.newUUID()
	if err != nil {
		c.logger.Warn("uuid generation failed", "error", err)
		return err
	}
	c.state.Output = id
	return nil
}

// Epoch renders the current input as epoch seconds in UTC and in the
// configured local zone. Unparsable input yields "N/A" for both.
func (c *Controller) Epoch() transform.EpochTimes {
	times, err := transform.FormatEpoch(c.state.Input, c.location)
	if err != nil {
		return transform.EpochTimes{UTC: OutputNotAvailable, Local: OutputNotAvailable}
	}
	return times
}

// NowUTC is the current time in UTC.
func (c *Controller) NowUTC() string {
	return transform.FormatTime(c.now(), time.UTC)
}

func (c *Controller) setOutput(out string, err error, placeholder string) {
	if err != nil {
		c.logger.Debug("transform failed",
			"tool", c.state.Tool.Name(),
			"direction", c.state.Direction.Name(),
			"error", err)
		c.state.Output = placeholder
		return
	}
	c.state.Output = out
}

func (c *Controller) clearText() {
	c.state.Input = ""
	c.state.Output = ""
}
