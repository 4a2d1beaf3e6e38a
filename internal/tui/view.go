package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/tubescout/internal/export"
	"github.com/csheth/tubescout/internal/notify"
	"github.com/csheth/tubescout/internal/tabs"
	"github.com/csheth/tubescout/internal/workflow"
	"github.com/csheth/tubescout/internal/youtube"
)

const notificationWidth = 60

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	m.refreshViewportIfDirty()

	parts := []string{m.headerView(), m.inputSection()}
	switch {
	case m.paletteOpen:
		parts = append(parts, m.paletteView())
	case m.workflow.State() == workflow.ShowingResults:
		parts = append(parts, m.resultsView(), m.exportSection())
	}
	parts = append(parts, m.footerView())
	return joinNonEmpty(parts)
}

func (m *model) headerView() string {
	current := m.theme.Current()
	toggle := m.styles.toggle.Render(fmt.Sprintf("%s %s", current.Icon(), current.Hint())) +
		" " + m.styles.key.Render(m.keys.ToggleTheme.Help().Key)
	brand := lipgloss.JoinVertical(lipgloss.Left, m.renderLogo(), m.styles.tagline.Render(tagline))
	return lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", toggle)
}

func (m *model) inputSection() string {
	var b strings.Builder
	b.WriteString(m.styles.sectionHeader.Render("YouTube Video URL"))
	b.WriteRune('\n')
	b.WriteString(m.inputBoxStyle().Render(m.urlInput.View()))
	b.WriteRune('\n')
	b.WriteString(m.controlsView())
	for _, n := range m.presenter.List(notify.ContainerInput) {
		b.WriteRune('\n')
		b.WriteString(m.renderNotification(n))
	}
	return b.String()
}

// inputBoxStyle is the live validation cue. Empty input stays neutral.
func (m *model) inputBoxStyle() lipgloss.Style {
	switch youtube.Check(m.urlInput.Value()) {
	case youtube.FeedbackValid:
		return m.styles.inputValid
	case youtube.FeedbackInvalid:
		return m.styles.inputInvalid
	default:
		return m.styles.inputNeutral
	}
}

func (m *model) controlsView() string {
	language := m.styles.keyDesc.Render(fmt.Sprintf("Output language: %s ", m.language.Name)) +
		m.styles.key.Render(m.keys.NextLanguage.Help().Key)
	return lipgloss.JoinHorizontal(lipgloss.Center, m.submitButton(), "   ", language)
}

func (m *model) submitButton() string {
	if m.workflow.Busy() {
		return m.styles.buttonBusy.Render(m.spinner.View() + " Processing...")
	}
	return m.styles.button.Render("✨ Summarize Video")
}

func (m *model) resultsView() string {
	var bar []string
	for _, t := range tabs.All() {
		label := t.Icon() + " " + t.Title()
		if m.router.IsActive(t) {
			bar = append(bar, m.styles.tabActive.Render(label))
		} else {
			bar = append(bar, m.styles.tabInactive.Render(label))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, bar...)
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, m.styles.pane.Render(m.viewport.View()))
}

func (m *model) exportSection() string {
	var buttons []string
	for _, f := range export.Formats() {
		buttons = append(buttons, m.styles.exportButton.Render(fmt.Sprintf("%s %s", f.Label(), m.keys.binding(exportAction(f)).Help().Key)))
	}
	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, append([]string{m.styles.sectionHeader.Render("Export ")}, buttons...)...))
	for _, n := range m.presenter.List(notify.ContainerExport) {
		b.WriteRune('\n')
		b.WriteString(m.renderNotification(n))
	}
	return b.String()
}

func (m *model) renderNotification(n notify.Notification) string {
	style := m.styles.errorToast
	icon := "✖"
	if n.Kind == notify.KindInfo {
		style = m.styles.infoToast
		icon = "ℹ"
	}
	var lines []string
	if n.Title != "" {
		lines = append(lines, m.styles.toastTitle.Render(icon+" "+n.Title))
		lines = append(lines, wordwrap.String(n.Message, notificationWidth))
	} else {
		lines = append(lines, wordwrap.String(icon+" "+n.Message, notificationWidth))
	}
	lines = append(lines, m.styles.helper.Render("esc to dismiss"))
	return style.Render(strings.Join(lines, "\n"))
}

func (m *model) paletteView() string {
	rows := []string{
		m.styles.sectionHeader.Render("Command Palette"),
		m.paletteInput.View(),
		m.styles.helper.Render("Enter to run, Esc to cancel."),
		"",
	}
	if len(m.paletteMatches) == 0 {
		rows = append(rows, m.styles.helper.Render("No commands match this filter."))
	}
	for i, cmd := range m.paletteMatches {
		entry := fmt.Sprintf("  %s  [%s]", cmd.title, cmd.shortcut)
		if i == m.paletteCursor {
			entry = m.styles.currentLine.Render(fmt.Sprintf("▸ %s  [%s]", cmd.title, cmd.shortcut))
		}
		rows = append(rows, entry, m.styles.helper.Render("   "+cmd.description))
	}
	return m.styles.paletteBox.Render(strings.Join(rows, "\n"))
}

func (m *model) footerView() string {
	parts := []string{}
	if m.infoMessage != "" {
		parts = append(parts, m.styles.helper.Render(m.infoMessage))
	}
	parts = append(parts, m.statusBarView(), m.styles.legendBox.Render(m.help.View(m.keys)))
	return joinNonEmpty(parts)
}

func (m *model) statusBarView() string {
	stats := []string{
		fmt.Sprintf("Theme %s", m.theme.Current()),
		fmt.Sprintf("Language %s", m.language.Name),
		fmt.Sprintf("Backend %s", m.workflow.BackendName()),
		fmt.Sprintf("State %s", m.workflow.State()),
	}
	if sub, ok := m.workflow.Current(); ok {
		if elapsed, running := m.jobs.Elapsed(sub.ID, time.Now()); running {
			stats = append(stats, fmt.Sprintf("%s %ds", m.spinner.View(), int(elapsed.Seconds())))
		}
		stats = append(stats, truncate.StringWithTail(sub.URL, 48, "…"))
	}
	return m.styles.statusBar.Render(strings.Join(stats, "  •  "))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

// renderLogo draws the wordmark over a rule as wide as its widest line.
func (m *model) renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	face := lipgloss.JoinVertical(lipgloss.Left, logoArtLines...)
	rule := strings.Repeat("▀", lipgloss.Width(face))
	return m.styles.logoContainer.Render(m.styles.logoFace.Render(face) + "\n" + m.styles.logoShadow.Render(rule))
}
