package ui

import (
	"log/slog"

	"github.com/Cyclone1070/devtoolbox/internal/config"
	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/ui/services"
	"github.com/Cyclone1070/devtoolbox/internal/ui/views"
	tea "github.com/charmbracelet/bubbletea"
)

// UI runs the toolbox window using Bubble Tea
type UI struct {
	program *tea.Program
}

// Dependencies holds the collaborators of the UI
type Dependencies struct {
	Controller *toolbox.Controller
	Renderer   services.MarkdownRenderer
	Clipboard  services.Clipboard
	Config     config.UIConfig
	Logger     *slog.Logger
}

// NewUI creates a new Bubble Tea UI. The controller may already hold a
// restored state; the widgets start from it.
func NewUI(deps Dependencies, opts ...tea.ProgramOption) *UI {
	views.SetColors(deps.Config.ColorPrimary, deps.Config.ColorMuted)

	model := newBubbleTeaModel(deps)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)

	return &UI{program: tea.NewProgram(model, opts...)}
}

// Start runs the UI until the user quits
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
