package views

import (
	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status message above the key hints
func RenderStatus(s models.State) string {
	status := "Ready"
	if s.StatusMessage != "" {
		status = s.StatusMessage
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		StatusStyle.Render(status),
		s.Help.View(s.Keys),
	)
}
