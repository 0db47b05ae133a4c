package models

import (
	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/transform"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sahilm/fuzzy"
)

// Focus identifies the pane receiving keys
type Focus int

const (
	FocusSidebar Focus = iota
	FocusInput
	FocusOutput
)

// focusOrder is the tab cycle
var focusOrder = []Focus{FocusSidebar, FocusInput, FocusOutput}

// Next returns the pane after f in the tab cycle
func (f Focus) Next() Focus {
	return focusOrder[(int(f)+1)%len(focusOrder)]
}

// Prev returns the pane before f in the tab cycle
func (f Focus) Prev() Focus {
	return focusOrder[(int(f)+len(focusOrder)-1)%len(focusOrder)]
}

// Popup identifies the overlay drawn above the window, if any
type Popup int

const (
	PopupNone Popup = iota
	PopupFileMenu
	PopupPalette
)

// FileMenuItems are the entries of the File menu
var FileMenuItems = []string{"Quit"}

// State holds everything the views need to draw one frame
type State struct {
	// Toolbox is a copy of the controller state
	Toolbox toolbox.State
	// Epoch is derived from the input while the Unix time tool is active
	Epoch  transform.EpochTimes
	NowUTC string

	Width  int
	Height int

	SidebarWidth int
	Focus        Focus

	// Input widgets: Epoch uses the single line one, every other tool the textarea
	Input      textarea.Model
	EpochInput textinput.Model
	Output     viewport.Model

	Popup         Popup
	FileMenuIndex int

	PaletteQuery   textinput.Model
	PaletteMatches fuzzy.Matches
	PaletteIndex   int

	StatusMessage string

	Help help.Model
	Keys KeyMap
}
