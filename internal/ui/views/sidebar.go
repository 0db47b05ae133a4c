package views

import (
	"strings"

	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
)

// RenderSidebar renders the tool list with the active tool marked
func RenderSidebar(s models.State, height int) string {
	heading := HeadingStyle.Render("Toolbox")
	if s.Focus == models.FocusSidebar {
		heading = HeadingStyle.Foreground(ColorPrimary).Render("Toolbox")
	}

	lines := []string{heading}
	for _, tool := range toolbox.Tools {
		if tool == s.Toolbox.Tool {
			lines = append(lines, SelectedStyle.Render("▸ "+tool.Title()))
		} else {
			lines = append(lines, SidebarItemStyle.Render(tool.Title()))
		}
	}

	return SidebarStyle.
		Width(s.SidebarWidth).
		Height(max(height, 1)).
		Render(strings.Join(lines, "\n"))
}
