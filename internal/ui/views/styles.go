package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("63")
	ColorMuted   = lipgloss.Color("241")

	MenuBarStyle     lipgloss.Style
	MenuItemStyle    lipgloss.Style
	SidebarStyle     lipgloss.Style
	SidebarItemStyle lipgloss.Style
	SelectedStyle    lipgloss.Style
	HeadingStyle     lipgloss.Style
	LabelStyle       lipgloss.Style
	FocusedBoxStyle  lipgloss.Style
	BlurredBoxStyle  lipgloss.Style
	ButtonStyle      lipgloss.Style
	PopupBoxStyle    lipgloss.Style
	StatusStyle      lipgloss.Style
	HintStyle        lipgloss.Style
)

func init() {
	SetColors("63", "241")
}

// SetColors rebuilds every style from the primary and muted colors
func SetColors(primary, muted string) {
	ColorPrimary = lipgloss.Color(primary)
	ColorMuted = lipgloss.Color(muted)

	MenuBarStyle = lipgloss.NewStyle().Reverse(true)
	MenuItemStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(ColorMuted).
		PaddingRight(1)
	SidebarItemStyle = lipgloss.NewStyle().PaddingLeft(2)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	HeadingStyle = lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1)
	LabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	FocusedBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)
	BlurredBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted)
	ButtonStyle = lipgloss.NewStyle().Bold(true)
	PopupBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	HintStyle = lipgloss.NewStyle().Faint(true)
}
