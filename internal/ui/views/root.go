package views

import (
	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of lines used by the menu bar and status area
const chromeHeight = 3

// BodyHeight is the height left for the sidebar and central panel
func BodyHeight(totalHeight int) int {
	return max(totalHeight-chromeHeight, 1)
}

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderSidebar(s, BodyHeight(s.Height)),
		lipgloss.NewStyle().PaddingLeft(1).Render(RenderPanel(s)),
	)
	body = lipgloss.NewStyle().Height(BodyHeight(s.Height)).MaxHeight(BodyHeight(s.Height)).Render(body)

	var popup string
	switch s.Popup {
	case models.PopupFileMenu:
		popup = RenderFileMenu(s)
	case models.PopupPalette:
		popup = RenderPalette(s)
	}
	if popup != "" {
		// Overlay popup on top
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			popup,
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderMenuBar(s),
		body,
		RenderStatus(s),
	)
}
