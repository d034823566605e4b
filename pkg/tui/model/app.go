package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/modoterra/jrnlvw/pkg/report"
)

type keyMap struct {
	Quit key.Binding
	Next key.Binding
	Prev key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Next: key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "next boot")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "p"), key.WithHelp("shift+tab", "prev boot")),
}

// App is the root Bubble Tea model of the report browser. It pages
// through one boot at a time.
type App struct {
	report  *report.Report
	limit   int
	current int

	viewport viewport.Model
	ready    bool
	width    int
}

// New creates a browser over r showing at most limit records per boot.
func New(r *report.Report, limit int) App {
	return App{report: r, limit: limit}
}

// Init sets the window title.
func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("jrnlvw " + a.report.File)
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		h := max(msg.Height-2, 1)
		if !a.ready {
			a.viewport = viewport.New(msg.Width, h)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = h
		}
		a.viewport.SetContent(a.content())
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Next):
			return a.switchSession(1), nil
		case key.Matches(msg, keys.Prev):
			return a.switchSession(-1), nil
		}
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a App) switchSession(delta int) App {
	n := len(a.report.Sessions())
	if n == 0 {
		return a
	}
	a.current = (a.current + delta + n) % n
	if a.ready {
		a.viewport.SetContent(a.content())
		a.viewport.GotoTop()
	}
	return a
}

// Current returns the boot id on screen, or "" for an empty report.
func (a App) Current() string {
	sessions := a.report.Sessions()
	if len(sessions) == 0 {
		return ""
	}
	return sessions[a.current].Boot
}

func (a App) content() string {
	sessions := a.report.Sessions()
	if len(sessions) == 0 {
		return dimStyle.Render("no entries")
	}
	var b strings.Builder
	if err := report.WriteSession(&b, sessions[a.current], a.report.Total, a.limit, true); err != nil {
		return "error: " + err.Error()
	}
	return b.String()
}
