package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// AppTitle is shown at the right of the menu bar
const AppTitle = "DevToolbox"

// RenderMenuBar renders the single-line menu bar
func RenderMenuBar(s models.State) string {
	file := MenuItemStyle.Render("File")
	if s.Popup == models.PopupFileMenu {
		file = MenuItemStyle.Foreground(ColorPrimary).Render("File")
	}
	title := MenuItemStyle.Bold(false).Render(AppTitle)

	gap := s.Width - lipgloss.Width(file) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}
	return MenuBarStyle.Render(file + strings.Repeat(" ", gap) + title)
}

// RenderFileMenu renders the File menu popup
func RenderFileMenu(s models.State) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("File"))
	lines = append(lines, "")

	for i, item := range models.FileMenuItems {
		if i == s.FileMenuIndex {
			lines = append(lines, SelectedStyle.Render(fmt.Sprintf("▸ %s", item)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", item))
		}
	}

	lines = append(lines, "")
	lines = append(lines, HintStyle.Render("Enter: Select  Esc: Cancel"))

	return PopupBoxStyle.Render(strings.Join(lines, "\n"))
}
