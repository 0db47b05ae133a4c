package views

import (
	"testing"

	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/transform"
	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderPanel_CodecTool(t *testing.T) {
	state := createTestState(toolbox.ToolBase64)
	state.Toolbox.Direction = toolbox.DirectionDecode
	state.Input = createTestTextArea("aGk=")
	state.Output = createTestViewport("hi")

	result := RenderPanel(state)

	assert.Contains(t, result, "Base64 Encoding/Decoding")
	assert.Contains(t, result, "( ) Encode")
	assert.Contains(t, result, "(•) Decode")
	assert.Contains(t, result, "[ clear ]")
	assert.Contains(t, result, "Input")
	assert.Contains(t, result, "aGk=")
	assert.Contains(t, result, "Output")
	assert.Contains(t, result, "hi")
}

func TestRenderPanel_FormatterHasNoDirection(t *testing.T) {
	state := createTestState(toolbox.ToolSQLFormat)

	result := RenderPanel(state)

	assert.Contains(t, result, "SQL Formatter")
	assert.Contains(t, result, "[ clear ]")
	assert.NotContains(t, result, "Encode")
}

func TestRenderPanel_UUID(t *testing.T) {
	state := createTestState(toolbox.ToolUUID)
	state.Output = createTestViewport("2f1e6a52-3c2b-4d9a-8f00-0123456789ab")

	result := RenderPanel(state)

	assert.Contains(t, result, "UUID Generator")
	assert.Contains(t, result, "[ generate ]")
	assert.Contains(t, result, "2f1e6a52-3c2b-4d9a-8f00-0123456789ab")
	assert.NotContains(t, result, "Input")
}

func TestRenderPanel_UnixTime(t *testing.T) {
	state := createTestState(toolbox.ToolUnixTime)
	state.NowUTC = "2024-02-29 18:14:15"
	state.EpochInput = createTestTextInput("0")
	state.Epoch = transform.EpochTimes{UTC: "1970-01-01 00:00:00", Local: "1970-01-01 09:00:00"}

	result := RenderPanel(state)

	assert.Contains(t, result, "Unix Time Converter")
	assert.Contains(t, result, "UTC Now: 2024-02-29 18:14:15")
	assert.Contains(t, result, "Epoch input")
	assert.Contains(t, result, "Formatted UTC Time: 1970-01-01 00:00:00")
	assert.Contains(t, result, "Formatted Local Time: 1970-01-01 09:00:00")
}

func TestRenderPanel_UnixTimeInvalid(t *testing.T) {
	state := createTestState(toolbox.ToolUnixTime)
	state.Epoch = transform.EpochTimes{UTC: toolbox.OutputNotAvailable, Local: toolbox.OutputNotAvailable}

	result := RenderPanel(state)

	assert.Contains(t, result, "Formatted UTC Time: N/A")
	assert.Contains(t, result, "Formatted Local Time: N/A")
}

func TestRenderDirection(t *testing.T) {
	assert.Contains(t, RenderDirection(toolbox.DirectionEncode), "(•) Encode")
	assert.Contains(t, RenderDirection(toolbox.DirectionEncode), "( ) Decode")
}

func TestRenderButton(t *testing.T) {
	assert.Contains(t, RenderButton("generate", true), "[ generate ]")
	assert.Contains(t, RenderButton("generate", false), "[ generate ]")
}

func TestRenderPanel_FocusDoesNotChangeContent(t *testing.T) {
	state := createTestState(toolbox.ToolJSONFormat)
	state.Output = createTestViewport("{}")

	state.Focus = models.FocusOutput
	result := RenderPanel(state)

	assert.Contains(t, result, "{}")
}
