package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/Cyclone1070/devtoolbox/internal/ui/services"
	"github.com/Cyclone1070/devtoolbox/internal/ui/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	controller *toolbox.Controller
	renderer   services.MarkdownRenderer
	clipboard  services.Clipboard
	logger     *slog.Logger

	highlight    bool
	tickInterval time.Duration
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(deps Dependencies) BubbleTeaModel {
	// Initialize components
	ta := textarea.New()
	ta.Placeholder = "Input"
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = deps.Config.ShowLineNumbers

	ei := textinput.New()
	ei.Placeholder = "Epoch seconds"
	ei.CharLimit = 32

	pq := textinput.New()
	pq.Prompt = "> "
	pq.Placeholder = "tool name"

	vp := viewport.New(80, 10)

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tickMs := deps.Config.TickIntervalMs
	if tickMs <= 0 {
		tickMs = 1000
	}

	m := BubbleTeaModel{
		state: models.State{
			SidebarWidth: deps.Config.SidebarWidth,
			Focus:        models.FocusInput,
			Input:        ta,
			EpochInput:   ei,
			Output:       vp,
			PaletteQuery: pq,
			Help:         help.New(),
			Keys:         models.DefaultKeyMap(),
		},
		controller:   deps.Controller,
		renderer:     deps.Renderer,
		clipboard:    deps.Clipboard,
		logger:       logger,
		highlight:    deps.Config.HighlightOutput,
		tickInterval: time.Duration(tickMs) * time.Millisecond,
	}

	m.loadInputs()
	m.sync()
	m.applyFocus()
	return m
}

// Internal messages
type tickMsg time.Time

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.tick(),
	)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.layout()
		m.refreshOutput()
		return m, nil

	case tickMsg:
		m.state.NowUTC = m.controller.NowUTC()
		return m, m.tick()
	}

	return m.updateFocused(msg)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.Popup {
	case models.PopupFileMenu:
		return m.handleFileMenuKey(msg)
	case models.PopupPalette:
		return m.handlePaletteKey(msg)
	}

	keys := m.state.Keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.FileMenu):
		m.state.Popup = models.PopupFileMenu
		m.state.FileMenuIndex = 0
		return m, nil

	case key.Matches(msg, keys.Palette):
		cmd := m.openPalette()
		return m, cmd

	case key.Matches(msg, keys.NextFocus):
		cmd := m.setFocus(m.state.Focus.Next())
		return m, cmd

	case key.Matches(msg, keys.PrevFocus):
		cmd := m.setFocus(m.state.Focus.Prev())
		return m, cmd

	case key.Matches(msg, keys.Toggle):
		if m.controller.ToggleDirection() {
			m.resetInputs()
			m.sync()
			m.state.StatusMessage = m.controller.State().Direction.Title()
		}
		return m, nil

	case key.Matches(msg, keys.Clear):
		m.controller.Clear()
		m.resetInputs()
		m.sync()
		m.state.StatusMessage = ""
		return m, nil

	case key.Matches(msg, keys.Copy):
		m.copyOutput()
		return m, nil

	case key.Matches(msg, keys.Generate):
		m.generate()
		return m, nil
	}

	switch m.state.Focus {
	case models.FocusSidebar:
		switch {
		case key.Matches(msg, keys.Up):
			if i := m.toolIndex(); i > 0 {
				cmd := m.selectTool(toolbox.Tools[i-1])
				return m, cmd
			}
		case key.Matches(msg, keys.Down):
			if i := m.toolIndex(); i < len(toolbox.Tools)-1 {
				cmd := m.selectTool(toolbox.Tools[i+1])
				return m, cmd
			}
		case key.Matches(msg, keys.Select):
			cmd := m.setFocus(models.FocusInput)
			return m, cmd
		}
		return m, nil

	case models.FocusInput:
		if m.state.Toolbox.Tool == toolbox.ToolUUID {
			if key.Matches(msg, keys.Select) {
				m.generate()
			}
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// handleFileMenuKey handles keys while the File menu is open
func (m BubbleTeaModel) handleFileMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.state.Keys
	switch {
	case key.Matches(msg, keys.Up):
		if m.state.FileMenuIndex > 0 {
			m.state.FileMenuIndex--
		}
	case key.Matches(msg, keys.Down):
		if m.state.FileMenuIndex < len(models.FileMenuItems)-1 {
			m.state.FileMenuIndex++
		}
	case key.Matches(msg, keys.Select):
		if models.FileMenuItems[m.state.FileMenuIndex] == "Quit" {
			return m, tea.Quit
		}
		m.state.Popup = models.PopupNone
	case key.Matches(msg, keys.Close), key.Matches(msg, keys.FileMenu):
		m.state.Popup = models.PopupNone
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// handlePaletteKey handles keys while the tool palette is open. Letters go
// to the query, so only arrow keys navigate.
func (m BubbleTeaModel) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.state.PaletteIndex > 0 {
			m.state.PaletteIndex--
		}
		return m, nil
	case "down":
		if m.state.PaletteIndex < len(m.state.PaletteMatches)-1 {
			m.state.PaletteIndex++
		}
		return m, nil
	case "enter":
		m.closePalette()
		if m.state.PaletteIndex < len(m.state.PaletteMatches) {
			tool := toolbox.Tools[m.state.PaletteMatches[m.state.PaletteIndex].Index]
			cmd := m.selectTool(tool)
			return m, cmd
		}
		return m, nil
	case "esc":
		m.closePalette()
		return m, nil
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.state.PaletteQuery, cmd = m.state.PaletteQuery.Update(msg)
	m.filterPalette()
	return m, cmd
}

// updateFocused forwards msg to the widget owning the focus and feeds any
// input change to the controller
func (m BubbleTeaModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state.Focus {
	case models.FocusInput:
		switch m.state.Toolbox.Tool {
		case toolbox.ToolUUID:
			// no editable input
		case toolbox.ToolUnixTime:
			m.state.EpochInput, cmd = m.state.EpochInput.Update(msg)
			m.setInput(m.state.EpochInput.Value())
		default:
			m.state.Input, cmd = m.state.Input.Update(msg)
			m.setInput(m.state.Input.Value())
		}
	case models.FocusOutput:
		m.state.Output, cmd = m.state.Output.Update(msg)
	}

	return m, cmd
}

func (m *BubbleTeaModel) setInput(value string) {
	if value == m.controller.State().Input {
		return
	}
	m.controller.SetInput(value)
	m.sync()
}

func (m *BubbleTeaModel) selectTool(tool toolbox.Tool) tea.Cmd {
	m.controller.SelectTool(tool)
	m.resetInputs()
	m.sync()
	m.state.StatusMessage = ""
	return m.applyFocus()
}

func (m *BubbleTeaModel) generate() {
	if m.controller.State().Tool != toolbox.ToolUUID {
		return
	}
	if err := m.controller.Generate(); err != nil {
		m.state.StatusMessage = fmt.Sprintf("UUID generation failed: %v", err)
		return
	}
	m.sync()
	m.state.StatusMessage = "Generated UUID"
}

func (m *BubbleTeaModel) copyOutput() {
	text := m.controller.State().Output
	if m.controller.State().Tool == toolbox.ToolUnixTime {
		text = m.state.Epoch.UTC
	}
	if text == "" || m.clipboard == nil {
		m.state.StatusMessage = "Nothing to copy"
		return
	}
	if err := m.clipboard.WriteAll(text); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		m.state.StatusMessage = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.state.StatusMessage = "Copied output to clipboard"
}

func (m *BubbleTeaModel) openPalette() tea.Cmd {
	m.state.Popup = models.PopupPalette
	m.state.PaletteQuery.SetValue("")
	m.filterPalette()
	return m.state.PaletteQuery.Focus()
}

func (m *BubbleTeaModel) closePalette() {
	m.state.Popup = models.PopupNone
	m.state.PaletteQuery.Blur()
}

// filterPalette matches the query against the tool titles. An empty query
// lists every tool in sidebar order.
func (m *BubbleTeaModel) filterPalette() {
	titles := make([]string, len(toolbox.Tools))
	for i, tool := range toolbox.Tools {
		titles[i] = tool.Title()
	}

	query := strings.TrimSpace(m.state.PaletteQuery.Value())
	if query == "" {
		matches := make(fuzzy.Matches, len(titles))
		for i, title := range titles {
			matches[i] = fuzzy.Match{Str: title, Index: i}
		}
		m.state.PaletteMatches = matches
	} else {
		m.state.PaletteMatches = fuzzy.Find(query, titles)
	}
	m.state.PaletteIndex = 0
}

func (m *BubbleTeaModel) setFocus(f models.Focus) tea.Cmd {
	m.state.Focus = f
	return m.applyFocus()
}

// applyFocus focuses the widget matching the focused pane and the active tool
func (m *BubbleTeaModel) applyFocus() tea.Cmd {
	m.state.Input.Blur()
	m.state.EpochInput.Blur()

	if m.state.Focus != models.FocusInput {
		return nil
	}
	switch m.state.Toolbox.Tool {
	case toolbox.ToolUUID:
		return nil
	case toolbox.ToolUnixTime:
		return m.state.EpochInput.Focus()
	default:
		return m.state.Input.Focus()
	}
}

// loadInputs copies the controller input into the widgets
func (m *BubbleTeaModel) loadInputs() {
	in := m.controller.State().Input
	m.state.Input.SetValue(in)
	m.state.EpochInput.SetValue(in)
}

func (m *BubbleTeaModel) resetInputs() {
	m.state.Input.Reset()
	m.state.EpochInput.SetValue("")
}

// sync copies the controller state and everything derived from it into the
// view state
func (m *BubbleTeaModel) sync() {
	m.state.Toolbox = m.controller.State()
	m.state.NowUTC = m.controller.NowUTC()
	if m.state.Toolbox.Tool == toolbox.ToolUnixTime {
		m.state.Epoch = m.controller.Epoch()
	}
	m.refreshOutput()
}

// refreshOutput updates the output viewport content
func (m *BubbleTeaModel) refreshOutput() {
	out := m.state.Toolbox.Output
	if m.highlight {
		out = services.HighlightOutput(m.state.Toolbox.Tool, out, m.state.Output.Width, m.renderer)
	}
	m.state.Output.SetContent(out)
	m.state.Output.GotoTop()
}

// layout sizes the widgets to the window
func (m *BubbleTeaModel) layout() {
	// sidebar border and padding plus the panel's left padding and box borders
	areaWidth := max(m.state.Width-m.state.SidebarWidth-6, 10)
	// heading, controls, two labels, two box borders
	areaHeight := max((views.BodyHeight(m.state.Height)-9)/2, 1)

	m.state.Input.SetWidth(areaWidth)
	m.state.Input.SetHeight(areaHeight)
	m.state.EpochInput.Width = areaWidth - 4
	m.state.Output.Width = areaWidth
	m.state.Output.Height = areaHeight
	m.state.Help.Width = m.state.Width
}

func (m BubbleTeaModel) toolIndex() int {
	for i, tool := range toolbox.Tools {
		if tool == m.state.Toolbox.Tool {
			return i
		}
	}
	return 0
}

func (m BubbleTeaModel) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
