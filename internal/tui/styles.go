package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/tubescout/internal/theme"
)

// styles is the lipgloss projection of a theme palette. It is rebuilt
// whenever the theme changes and never consulted as a source of truth.
type styles struct {
	title         lipgloss.Style
	tagline       lipgloss.Style
	sectionHeader lipgloss.Style
	helper        lipgloss.Style
	errorText     lipgloss.Style
	inputNeutral  lipgloss.Style
	inputValid    lipgloss.Style
	inputInvalid  lipgloss.Style
	button        lipgloss.Style
	buttonBusy    lipgloss.Style
	toggle        lipgloss.Style
	tabActive     lipgloss.Style
	tabInactive   lipgloss.Style
	pane          lipgloss.Style
	errorToast    lipgloss.Style
	infoToast     lipgloss.Style
	toastTitle    lipgloss.Style
	exportButton  lipgloss.Style
	statusBar     lipgloss.Style
	key           lipgloss.Style
	keyDesc       lipgloss.Style
	legendBox     lipgloss.Style
	paletteBox    lipgloss.Style
	currentLine   lipgloss.Style
	logoFace      lipgloss.Style
	logoShadow    lipgloss.Style
	logoContainer lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }
	input := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	toast := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return styles{
		title:         lipgloss.NewStyle().Bold(true).Foreground(c(p.Primary)),
		tagline:       lipgloss.NewStyle().Foreground(c(p.Secondary)).Italic(true),
		sectionHeader: lipgloss.NewStyle().Bold(true).Foreground(c(p.Info)),
		helper:        lipgloss.NewStyle().Foreground(c(p.Muted)),
		errorText:     lipgloss.NewStyle().Foreground(c(p.Danger)),
		inputNeutral:  input.BorderForeground(c(p.Border)),
		inputValid:    input.BorderForeground(c(p.Success)),
		inputInvalid:  input.BorderForeground(c(p.Danger)),
		button:        lipgloss.NewStyle().Bold(true).Foreground(c(p.StatusFg)).Background(c(p.Primary)).Padding(0, 2),
		buttonBusy:    lipgloss.NewStyle().Foreground(c(p.Muted)).Background(c(p.Border)).Padding(0, 2),
		toggle:        lipgloss.NewStyle().Foreground(c(p.Secondary)),
		tabActive:     lipgloss.NewStyle().Bold(true).Foreground(c(p.Primary)).Underline(true).Padding(0, 1),
		tabInactive:   lipgloss.NewStyle().Foreground(c(p.Muted)).Padding(0, 1),
		pane:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c(p.Border)),
		errorToast:    toast.BorderForeground(c(p.Danger)).Foreground(c(p.Danger)),
		infoToast:     toast.BorderForeground(c(p.Info)).Foreground(c(p.Foreground)),
		toastTitle:    lipgloss.NewStyle().Bold(true),
		exportButton:  lipgloss.NewStyle().Foreground(c(p.Foreground)).Border(lipgloss.NormalBorder(), false, true).BorderForeground(c(p.Border)).Padding(0, 1),
		statusBar:     lipgloss.NewStyle().Foreground(c(p.StatusFg)).Background(c(p.StatusBg)).Padding(0, 1),
		key:           lipgloss.NewStyle().Bold(true).Foreground(c(p.KeyFg)).Background(c(p.KeyBg)).Padding(0, 1),
		keyDesc:       lipgloss.NewStyle().Foreground(c(p.Foreground)),
		legendBox:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c(p.Border)).Padding(0, 2),
		paletteBox:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(c(p.Primary)).Padding(1, 2),
		currentLine:   lipgloss.NewStyle().Foreground(c(p.StatusFg)).Background(c(p.Primary)),
		logoFace:      lipgloss.NewStyle().Bold(true).Foreground(c(p.Primary)),
		logoShadow:    lipgloss.NewStyle().Foreground(c(p.Border)),
		logoContainer: lipgloss.NewStyle().Padding(0, 1),
	}
}

var logoArtLines = []string{
	"▀█▀ █ █ █▀▄ █▀▀",
	" █  █▄█ █▀▄ ██▄",
}

const tagline = "Summaries, notes, mind maps and Q&A for any YouTube video."
