package views

import (
	"strings"

	"github.com/Cyclone1070/devtoolbox/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// RenderPalette renders the tool palette with the matched characters highlighted
func RenderPalette(s models.State) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Go to tool:"))
	lines = append(lines, s.PaletteQuery.View())
	lines = append(lines, "")

	if len(s.PaletteMatches) == 0 {
		lines = append(lines, HintStyle.Render("  No matching tool"))
	}
	for i, match := range s.PaletteMatches {
		if i == s.PaletteIndex {
			lines = append(lines, SelectedStyle.Render("▸ ")+highlightMatch(match))
		} else {
			lines = append(lines, "  "+highlightMatch(match))
		}
	}

	lines = append(lines, "")
	lines = append(lines, HintStyle.Render("↑/↓: Navigate  Enter: Select  Esc: Cancel"))

	return PopupBoxStyle.Render(strings.Join(lines, "\n"))
}

func highlightMatch(match fuzzy.Match) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}

	var sb strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			sb.WriteString(SelectedStyle.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
