package views

import (
	"fmt"

	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderPanel renders the central panel of the active tool
func RenderPanel(s models.State) string {
	tb := s.Toolbox
	sections := []string{HeadingStyle.Render(tb.Tool.Title())}

	switch tb.Tool {
	case toolbox.ToolURLEncoding, toolbox.ToolBase64:
		sections = append(sections,
			RenderDirection(tb.Direction)+"    "+RenderButton("clear", false),
			renderArea("Input", s.Input.View(), s.Focus == models.FocusInput),
			renderArea("Output", s.Output.View(), s.Focus == models.FocusOutput),
		)
	case toolbox.ToolJSONFormat, toolbox.ToolSQLFormat:
		sections = append(sections,
			RenderButton("clear", false),
			renderArea("Input", s.Input.View(), s.Focus == models.FocusInput),
			renderArea("Output", s.Output.View(), s.Focus == models.FocusOutput),
		)
	case toolbox.ToolUUID:
		sections = append(sections,
			RenderButton("generate", s.Focus == models.FocusInput),
			renderArea("Output", s.Output.View(), s.Focus == models.FocusOutput),
		)
	case toolbox.ToolUnixTime:
		sections = append(sections,
			renderField("UTC Now", s.NowUTC),
			"",
			renderArea("Epoch input", s.EpochInput.View(), s.Focus == models.FocusInput),
			renderField("Formatted UTC Time", s.Epoch.UTC),
			renderField("Formatted Local Time", s.Epoch.Local),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderDirection renders the Encode/Decode radio pair
func RenderDirection(dir toolbox.Direction) string {
	radio := func(d toolbox.Direction) string {
		if d == dir {
			return SelectedStyle.Render("(•) " + d.Title())
		}
		return "( ) " + d.Title()
	}
	return radio(toolbox.DirectionEncode) + "  " + radio(toolbox.DirectionDecode)
}

// RenderButton renders a bracketed button label
func RenderButton(label string, focused bool) string {
	text := fmt.Sprintf("[ %s ]", label)
	if focused {
		return SelectedStyle.Render(text)
	}
	return ButtonStyle.Render(text)
}

func renderArea(label, body string, focused bool) string {
	box := BlurredBoxStyle
	if focused {
		box = FocusedBoxStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, LabelStyle.Render(label), box.Render(body))
}

func renderField(label, value string) string {
	return LabelStyle.Render(label+": ") + value
}
