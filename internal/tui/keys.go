package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tubescout/internal/export"
	"github.com/csheth/tubescout/internal/tabs"
)

// action is one user intent. Every key press and palette entry resolves to
// exactly one action, which dispatch hands to a single handler.
type action int

const (
	actionNone action = iota
	actionSubmit
	actionToggleTheme
	actionNextLanguage
	actionNextTab
	actionPrevTab
	actionSelectSummary
	actionSelectNotes
	actionSelectMindMap
	actionSelectQnA
	actionExportPDF
	actionExportTXT
	actionExportPNG
	actionDismiss
	actionPalette
	actionHelp
	actionQuit
)

func selectTabAction(t tabs.Tab) action {
	switch t {
	case tabs.Notes:
		return actionSelectNotes
	case tabs.MindMap:
		return actionSelectMindMap
	case tabs.QnA:
		return actionSelectQnA
	default:
		return actionSelectSummary
	}
}

func (a action) tab() (tabs.Tab, bool) {
	switch a {
	case actionSelectSummary:
		return tabs.Summary, true
	case actionSelectNotes:
		return tabs.Notes, true
	case actionSelectMindMap:
		return tabs.MindMap, true
	case actionSelectQnA:
		return tabs.QnA, true
	}
	return 0, false
}

func (a action) exportFormat() (export.Format, bool) {
	switch a {
	case actionExportPDF:
		return export.PDF, true
	case actionExportTXT:
		return export.TXT, true
	case actionExportPNG:
		return export.PNG, true
	}
	return "", false
}

func exportAction(f export.Format) action {
	switch f {
	case export.TXT:
		return actionExportTXT
	case export.PNG:
		return actionExportPNG
	default:
		return actionExportPDF
	}
}

type keyMap struct {
	Submit        key.Binding
	ToggleTheme   key.Binding
	NextLanguage  key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	SelectSummary key.Binding
	SelectNotes   key.Binding
	SelectMindMap key.Binding
	SelectQnA     key.Binding
	ExportPDF     key.Binding
	ExportTXT     key.Binding
	ExportPNG     key.Binding
	Dismiss       key.Binding
	Palette       key.Binding
	Help          key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "summarize video")),
		ToggleTheme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle theme")),
		NextLanguage:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "output language")),
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		SelectSummary: key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "summary")),
		SelectNotes:   key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "notes")),
		SelectMindMap: key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "mind map")),
		SelectQnA:     key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "q&a")),
		ExportPDF:     key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "export pdf")),
		ExportTXT:     key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "export txt")),
		ExportPNG:     key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "export png")),
		Dismiss:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Palette:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "commands")),
		Help:          key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		ScrollUp:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
		ScrollDown:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextTab, k.ToggleTheme, k.NextLanguage, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextLanguage, k.ToggleTheme, k.Dismiss},
		{k.NextTab, k.PrevTab, k.SelectSummary, k.SelectNotes, k.SelectMindMap, k.SelectQnA},
		{k.ExportPDF, k.ExportTXT, k.ExportPNG},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Palette, k.Help, k.Quit},
	}
}

// binding returns the key bound to a, for labelling.
func (k keyMap) binding(a action) key.Binding {
	for _, b := range k.table() {
		if b.action == a {
			return b.binding
		}
	}
	return key.Binding{}
}

type boundAction struct {
	binding key.Binding
	action  action
}

func (k keyMap) table() []boundAction {
	return []boundAction{
		{k.Quit, actionQuit},
		{k.Submit, actionSubmit},
		{k.ToggleTheme, actionToggleTheme},
		{k.NextLanguage, actionNextLanguage},
		{k.NextTab, actionNextTab},
		{k.PrevTab, actionPrevTab},
		{k.SelectSummary, actionSelectSummary},
		{k.SelectNotes, actionSelectNotes},
		{k.SelectMindMap, actionSelectMindMap},
		{k.SelectQnA, actionSelectQnA},
		{k.ExportPDF, actionExportPDF},
		{k.ExportTXT, actionExportTXT},
		{k.ExportPNG, actionExportPNG},
		{k.Dismiss, actionDismiss},
		{k.Palette, actionPalette},
		{k.Help, actionHelp},
	}
}

// actionFor resolves a key press. Unbound keys return actionNone and fall
// through to the URL input.
func (k keyMap) actionFor(msg tea.KeyMsg) action {
	for _, b := range k.table() {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return actionNone
}
