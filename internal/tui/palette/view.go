package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snipdeck/snipdeck/pkg/projection"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	groupStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	descStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (m *Model) View() string {
	if m.help.ShowAll {
		return "\n" + m.help.View(m.keys)
	}

	header := headerStyle.Render("Snippet Palette")

	var body string
	if len(m.displayNodes) == 0 {
		if m.filtering {
			body = descStyle.Render("No matching snippets.")
		} else {
			body = descStyle.Render("No snippets configured.")
		}
	} else {
		body = m.renderTree()
	}

	var sections []string
	sections = append(sections, header)
	if m.filtering {
		sections = append(sections, m.filterInput.View())
	}
	sections = append(sections, "", body, "")
	if m.statusMessage != "" {
		sections = append(sections, statusStyle.Render(m.statusMessage))
	}
	sections = append(sections, m.help.View(m.keys))

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTree() string {
	var b strings.Builder

	// Viewport calculation
	vh := m.viewportHeight()
	start := m.scrollOffset
	end := m.scrollOffset + vh
	if end > len(m.displayNodes) {
		end = len(m.displayNodes)
	}

	for i := start; i < end; i++ {
		node := m.displayNodes[i]
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("▶ ")
		}

		var line string
		if node.item.Kind == projection.KindGroup {
			foldIndicator := "▼ "
			if m.collapsedNodes[node.nodeID()] {
				foldIndicator = "▶ "
			}
			line = fmt.Sprintf("%s%s%s%s", cursor, node.prefix, foldIndicator, groupStyle.Render(node.item.Label))
			if i == m.cursor {
				line = lipgloss.NewStyle().Bold(true).Render(line)
			}
		} else {
			if i == m.cursor {
				label := node.item.Label
				if node.item.Description != "" {
					label += "  " + node.item.Description
				}
				line = selectedStyle.Render(fmt.Sprintf("%s%s▢ %s", cursor, node.prefix, label))
			} else {
				label := node.item.Label
				if node.item.Description != "" {
					label += descStyle.Render("  " + node.item.Description)
				}
				line = fmt.Sprintf("%s%s▢ %s", cursor, node.prefix, label)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(m.displayNodes) > vh {
		b.WriteString("\n")
		b.WriteString(descStyle.Render(fmt.Sprintf(" (%d-%d of %d)", start+1, end, len(m.displayNodes))))
	}

	return b.String()
}

func (m *Model) viewportHeight() int {
	// Header, spacing, status and help take up a handful of lines.
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}
