package views

import (
	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

func createTestTextArea(value string) textarea.Model {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.SetWidth(40)
	ta.SetHeight(3)
	ta.SetValue(value)
	return ta
}

func createTestTextInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	return ti
}

func createTestViewport(content string) viewport.Model {
	vp := viewport.New(60, 5)
	vp.SetContent(content)
	return vp
}

func createTestState(tool toolbox.Tool) models.State {
	return models.State{
		Toolbox:      toolbox.State{Tool: tool, Direction: toolbox.DirectionEncode},
		Width:        120,
		Height:       30,
		SidebarWidth: 30,
		Focus:        models.FocusInput,
		Input:        createTestTextArea(""),
		EpochInput:   createTestTextInput(""),
		Output:       createTestViewport(""),
		PaletteQuery: createTestTextInput(""),
		Help:         help.New(),
		Keys:         models.DefaultKeyMap(),
	}
}
