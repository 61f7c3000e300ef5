package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/bottleshop/internal/selector"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderStatusBar(), "", m.renderBody()}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Keep the footer on the last rows.
	if gap := m.height - lipgloss.Height(body) - m.footerHeight(); gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + m.renderFooter()
}

// renderStatusBar renders the single title row.
func (m Model) renderStatusBar() string {
	left := m.theme.Title.Render("bottleshop")
	right := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%s · %s", m.modality, m.locale))

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		return left
	}
	return left + strings.Repeat(" ", spacing) + right
}

// renderBody places the product pane beside the flyout menu, or below the
// dropdown on narrow terminals.
func (m Model) renderBody() string {
	if m.modality == selector.ModalityMobile {
		// The open dropdown pushes the pane down, so it gets what is left.
		products := m.products
		products.Resize(m.width, m.bodyHeight()-m.mobile.Height()-1)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.mobile.View(),
			"",
			products.View(),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.desktop.View(),
		"  ",
		m.products.View(),
	)
}

func (m Model) renderFooter() string {
	var lines []string
	if m.lastError != nil {
		lines = append(lines, m.theme.StatusError.Render("Error: "+m.lastError.Error()))
	}
	lines = append(lines, m.help.View(m.keymap))
	return strings.Join(lines, "\n")
}

func (m Model) bodyHeight() int {
	return m.height - bodyTop - m.footerHeight()
}

func (m Model) footerHeight() int {
	h := 1
	if m.help.ShowAll {
		for _, group := range m.keymap.FullHelp() {
			h = max(h, len(group))
		}
	}
	if m.lastError != nil {
		h++
	}
	return h
}
