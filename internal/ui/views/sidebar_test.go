package views

import (
	"testing"

	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/stretchr/testify/assert"
)

func TestRenderSidebar_ListsAllTools(t *testing.T) {
	state := createTestState(toolbox.ToolJSONFormat)

	result := RenderSidebar(state, 20)

	assert.Contains(t, result, "Toolbox")
	for _, tool := range toolbox.Tools {
		assert.Contains(t, result, tool.Title())
	}
	assert.Contains(t, result, "▸ Json Formatter")
	assert.NotContains(t, result, "▸ SQL Formatter")
}
