package tui

const (
	minViewportWidth          = 40
	minViewportHeight         = 6
	viewportHorizontalPadding = 4
	maxInputWidth             = 90
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	inputWidth     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 16,
		inputWidth:     70,
	}
}

// Update recomputes the pane geometry. Everything above and below the results
// pane (header, input, controls, tabs, export bar, status bar, legend) is
// treated as fixed chrome.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height

	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth

	l.inputWidth = innerWidth - 6
	if l.inputWidth > maxInputWidth {
		l.inputWidth = maxInputWidth
	}
	if l.inputWidth < 20 {
		l.inputWidth = 20
	}

	const chrome = 20
	contentHeight := height - chrome
	if contentHeight < minViewportHeight {
		contentHeight = minViewportHeight
	}
	l.viewportHeight = contentHeight
}
