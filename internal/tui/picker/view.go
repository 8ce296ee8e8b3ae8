package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/photocat/gcsel/internal/tui/theme"
)

func (m Model) View() string {
	if m.help.ShowAll {
		return "\n" + m.help.View(m.keys)
	}

	header := theme.Default.Header.Render("Select data to be plotted")
	body := m.renderTree()

	var footer string
	if m.editing {
		footer = theme.Default.Info.Render("Label: ") + m.labelInput.View()
	} else if m.statusMessage != "" {
		footer = theme.Default.Error.Render(m.statusMessage)
	} else {
		footer = m.help.View(m.keys)
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		footer,
	)
}

func (m Model) renderTree() string {
	if len(m.nodes) == 0 {
		return theme.Default.Muted.Render("No matching files found. Press esc to pick other directories.")
	}

	var b strings.Builder
	vh := m.viewportHeight()
	start := m.scrollOffset
	end := start + vh
	if end > len(m.nodes) {
		end = len(m.nodes)
	}

	for i := start; i < end; i++ {
		dn := m.nodes[i]
		n := dn.node

		cursor := "  "
		if i == m.cursor {
			cursor = theme.Default.Highlight.Render("▶ ")
		}
		indent := strings.Repeat("  ", dn.depth)

		fold := "  "
		if len(n.Children) > 0 {
			if m.collapsed[m.nodeID(n)] {
				fold = "▶ "
			} else {
				fold = "▼ "
			}
		}

		check := "    "
		if n.Checkable {
			if n.Checked {
				check = theme.Default.Checked.Render("[x] ")
			} else {
				check = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%s%s%s", cursor, indent, fold, check, n.Name)
		if n.Label != "" {
			line += theme.Default.Label.Render("  ‹" + n.Label + "›")
		}
		if i == m.cursor {
			line = theme.Default.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.nodes) > vh {
		b.WriteString(theme.Default.Muted.Render(
			fmt.Sprintf(" (%d-%d of %d)", start+1, end, len(m.nodes))))
	}
	return b.String()
}
