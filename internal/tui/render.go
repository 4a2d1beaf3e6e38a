package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/csheth/tubescout/internal/logger"
	"github.com/csheth/tubescout/internal/tabs"
)

const noTTYStyle = "notty"

type renderKey struct {
	submission string
	tab        tabs.Tab
	style      string
	width      int
}

// paneRenderer turns result markdown into terminal output. Rendering is
// memoised per submission, tab, style and width because glamour is slow
// enough to notice on every keystroke.
type paneRenderer struct {
	profile termenv.Profile
	log     logger.Logger
	cache   map[renderKey]string
}

func newPaneRenderer(profile termenv.Profile, log logger.Logger) *paneRenderer {
	return &paneRenderer{profile: profile, log: log, cache: map[renderKey]string{}}
}

// styleFor picks the glamour style, dropping colour on terminals that
// cannot show it.
func (r *paneRenderer) styleFor(glamourStyle string) string {
	if r.profile == termenv.Ascii {
		return noTTYStyle
	}
	return glamourStyle
}

func (r *paneRenderer) Render(submission string, tab tabs.Tab, glamourStyle string, width int, markdown string) string {
	if width < 20 {
		width = 20
	}
	k := renderKey{submission: submission, tab: tab, style: r.styleFor(glamourStyle), width: width}
	if out, ok := r.cache[k]; ok {
		return out
	}

	out, err := r.render(k.style, width, markdown)
	if err != nil {
		r.log.Warn("markdown render failed", logger.String("tab", tab.String()), logger.Error(err))
		out = wordwrap.String(markdown, width)
	}
	r.cache[k] = out
	return out
}

func (r *paneRenderer) render(style string, width int, markdown string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// Reset drops every cached rendering, e.g. when a new submission arrives.
func (r *paneRenderer) Reset() {
	r.cache = map[renderKey]string{}
}
