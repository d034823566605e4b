package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the TUI.
func (a App) View() string {
	if !a.ready {
		return "loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.renderTitle(), a.viewport.View(), a.renderStatusBar())
}

func (a App) renderTitle() string {
	n := len(a.report.Sessions())
	if n == 0 {
		return titleStyle.Render(a.report.File)
	}
	return titleStyle.Render(fmt.Sprintf("%s  boot %d/%d  %s", a.report.File, a.current+1, n, a.Current()))
}

func (a App) renderStatusBar() string {
	left := fmt.Sprintf("%3.f%%", a.viewport.ScrollPercent()*100)
	right := "tab/shift+tab:boot ↑/↓ pgup/pgdn:scroll q:quit"

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return helpStyle.Render(left + strings.Repeat(" ", gap) + right)
}
