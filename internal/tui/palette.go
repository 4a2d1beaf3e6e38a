package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tubescout/internal/export"
	"github.com/csheth/tubescout/internal/tabs"
	"github.com/csheth/tubescout/internal/workflow"
)

type paletteCommand struct {
	title       string
	shortcut    string
	description string
	action      action
}

// paletteCommands lists the actions that make sense right now.
func (m *model) paletteCommands() []paletteCommand {
	var cmds []paletteCommand
	if !m.workflow.Busy() {
		cmds = append(cmds, paletteCommand{"Summarize video", "enter", "Process the URL in the input field", actionSubmit})
	}
	cmds = append(cmds,
		paletteCommand{"Toggle theme", "ctrl+t", m.theme.Current().Hint(), actionToggleTheme},
		paletteCommand{"Next output language", "ctrl+l", "Currently " + m.language.Name, actionNextLanguage},
	)
	if m.workflow.State() == workflow.ShowingResults {
		for _, t := range tabs.All() {
			a := selectTabAction(t)
			cmds = append(cmds, paletteCommand{"Show " + t.Title(), m.keys.binding(a).Help().Key, "Switch the results pane to " + t.Title(), a})
		}
		for _, f := range export.Formats() {
			a := exportAction(f)
			cmds = append(cmds, paletteCommand{"Export " + f.Label(), m.keys.binding(a).Help().Key, export.Advisory(f), a})
		}
	}
	cmds = append(cmds,
		paletteCommand{"Toggle help", "f1", "Show every key binding", actionHelp},
		paletteCommand{"Quit", "ctrl+c", "Leave TubeScout", actionQuit},
	)
	return cmds
}

func filterPalette(cmds []paletteCommand, query string) []paletteCommand {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cmds
	}
	var out []paletteCommand
	for _, c := range cmds {
		if strings.Contains(strings.ToLower(c.title), query) || strings.Contains(strings.ToLower(c.description), query) {
			out = append(out, c)
		}
	}
	return out
}

func (m *model) openPalette() {
	m.paletteOpen = true
	m.paletteInput.SetValue("")
	m.paletteInput.Focus()
	m.urlInput.Blur()
	m.paletteCursor = 0
	m.paletteMatches = m.paletteCommands()
}

func (m *model) closePalette() {
	m.paletteOpen = false
	m.paletteInput.Blur()
	m.urlInput.Focus()
}

func (m *model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.dispatch(actionQuit)
	case tea.KeyEsc:
		m.closePalette()
		return nil
	case tea.KeyUp:
		if m.paletteCursor > 0 {
			m.paletteCursor--
		}
		return nil
	case tea.KeyDown:
		if m.paletteCursor < len(m.paletteMatches)-1 {
			m.paletteCursor++
		}
		return nil
	case tea.KeyEnter:
		if len(m.paletteMatches) == 0 {
			return nil
		}
		chosen := m.paletteMatches[m.paletteCursor]
		m.closePalette()
		return m.dispatch(chosen.action)
	}

	var cmd tea.Cmd
	m.paletteInput, cmd = m.paletteInput.Update(msg)
	m.paletteMatches = filterPalette(m.paletteCommands(), m.paletteInput.Value())
	if m.paletteCursor >= len(m.paletteMatches) {
		m.paletteCursor = 0
	}
	return cmd
}
