package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/csheth/tubescout/internal/backend"
	"github.com/csheth/tubescout/internal/export"
	"github.com/csheth/tubescout/internal/logger"
	"github.com/csheth/tubescout/internal/notify"
	"github.com/csheth/tubescout/internal/prefs"
	"github.com/csheth/tubescout/internal/tabs"
	"github.com/csheth/tubescout/internal/theme"
	"github.com/csheth/tubescout/internal/workflow"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Backend backend.Client
	// Theme holds the persisted light/dark preference. A nil manager keeps
	// the preference in memory.
	Theme      *theme.Manager
	Logger     logger.Logger
	Timeout    time.Duration
	Language   string
	DefaultTab tabs.Tab
	// PrefsChanges signals that the preference file was written externally.
	PrefsChanges <-chan struct{}
	ColorProfile termenv.Profile
}

// New returns a tea.Model ready to be mounted into a Program. The model is
// the single owner of every piece of UI state.
func New(config Config) tea.Model {
	return newModel(config)
}

func newModel(config Config) *model {
	log := config.Logger
	if log == nil {
		log = logger.NewNop()
	}
	mgr := config.Theme
	if mgr == nil {
		mgr = theme.NewManager(prefs.NewMemoryStore(), log)
	}
	client := config.Backend
	if client == nil {
		client = backend.NewDemo(backend.DefaultDemoDelay)
	}
	lang, ok := backend.LookupLanguage(config.Language)
	if !ok {
		lang, _ = backend.LookupLanguage(backend.DefaultLanguage)
	}

	urlInput := textinput.New()
	urlInput.Placeholder = "https://www.youtube.com/watch?v=..."
	urlInput.Prompt = "▶ "
	urlInput.Focus()
	urlInput.CharLimit = 200
	urlInput.Width = 70

	paletteInput := textinput.New()
	paletteInput.Placeholder = "Type to filter commands…"
	paletteInput.CharLimit = 60
	paletteInput.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 16)
	vp.MouseWheelEnabled = true

	presenter := notify.NewPresenter()
	m := &model{
		config:       config,
		log:          log.With(logger.String("component", "tui")),
		keys:         newKeyMap(),
		help:         help.New(),
		theme:        mgr,
		presenter:    presenter,
		router:       tabs.NewRouter(config.DefaultTab),
		workflow:     workflow.New(client, workflow.Options{Timeout: config.Timeout, Logger: log}),
		exporter:     export.NewDispatcher(presenter, log),
		jobs:         newJobBus(log),
		renderer:     newPaneRenderer(config.ColorProfile, log),
		urlInput:     urlInput,
		paletteInput: paletteInput,
		spinner:      spin,
		viewport:     vp,
		layout:       newPageLayout(),
		language:     lang,
		infoMessage:  "Paste a YouTube video URL and press Enter to summarize it.",
	}
	m.applyThemeProjection()
	return m
}

type model struct {
	config Config
	log    logger.Logger
	keys   keyMap
	help   help.Model

	theme     *theme.Manager
	styles    styles
	presenter *notify.Presenter
	router    *tabs.Router
	workflow  *workflow.Workflow
	exporter  *export.Dispatcher
	jobs      *jobBus
	renderer  *paneRenderer

	urlInput     textinput.Model
	paletteInput textinput.Model
	spinner      spinner.Model
	viewport     viewport.Model
	layout       pageLayout

	language       backend.Language
	infoMessage    string
	helpVisible    bool
	paletteOpen    bool
	paletteMatches []paletteCommand
	paletteCursor  int
	viewportDirty  bool
	quitting       bool
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForPrefsChange(m.config.PrefsChanges))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		m.sweepNotifications()
		if m.workflow.Busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.workflow.State() == workflow.ShowingResults && !m.paletteOpen {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case jobStartedMsg:
		m.jobs.track(msg)
		return m, nil
	case jobFinishedMsg:
		m.jobs.untrack(msg)
		if msg.payload == nil {
			return m, nil
		}
		return m.Update(msg.payload)
	case submissionResultMsg:
		return m, m.completeSubmission(msg.outcome)
	case notify.ExpiredMsg:
		m.presenter.Expire(msg.ID)
		m.sweepNotifications()
		return m, nil
	case prefsChangedMsg:
		if m.theme.ReloadFromStore() {
			m.applyThemeProjection()
			m.infoMessage = fmt.Sprintf("Theme changed to %s.", m.theme.Current())
		}
		return m, waitForPrefsChange(m.config.PrefsChanges)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.paletteOpen {
		return m, m.handlePaletteKey(msg)
	}
	if a := m.keys.actionFor(msg); a != actionNone {
		return m, m.dispatch(a)
	}
	if m.scroll(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

// dispatch is the single entry point for user intents, whether they come
// from a key binding or the command palette.
func (m *model) dispatch(a action) tea.Cmd {
	switch a {
	case actionQuit:
		m.quitting = true
		m.jobs.Stop()
		return tea.Quit
	case actionSubmit:
		return m.submit()
	case actionToggleTheme:
		m.theme.Toggle()
		m.applyThemeProjection()
		m.infoMessage = fmt.Sprintf("Switched to %s mode.", m.theme.Current())
		return nil
	case actionNextLanguage:
		m.language = backend.NextLanguage(m.language.Code)
		m.infoMessage = fmt.Sprintf("Output language: %s.", m.language.Name)
		return nil
	case actionNextTab:
		m.router.Next()
		m.tabChanged()
		return nil
	case actionPrevTab:
		m.router.Prev()
		m.tabChanged()
		return nil
	case actionSelectSummary, actionSelectNotes, actionSelectMindMap, actionSelectQnA:
		t, _ := a.tab()
		m.router.Select(t)
		m.tabChanged()
		return nil
	case actionExportPDF, actionExportTXT, actionExportPNG:
		f, _ := a.exportFormat()
		return m.requestExport(f)
	case actionDismiss:
		if n, ok := m.presenter.Latest(m.visibleContainers()...); ok {
			m.presenter.Dismiss(n.ID)
			return nil
		}
		m.helpVisible = false
		return nil
	case actionPalette:
		m.openPalette()
		return nil
	case actionHelp:
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return nil
	}
	return nil
}

func (m *model) submit() tea.Cmd {
	sub, job, err := m.workflow.Begin(m.urlInput.Value(), m.language.Code)
	switch {
	case errors.Is(err, workflow.ErrBusy):
		// The submit control is disabled while loading.
		return nil
	case err != nil:
		_, cmd := m.presenter.Show(notify.KindError, "", workflow.UserMessage(err), notify.ContainerInput)
		return cmd
	}
	m.infoMessage = fmt.Sprintf("Summarizing %s in %s…", sub.VideoID, m.language.Name)
	return tea.Batch(m.jobs.Start(sub.ID, submitJob(job)), m.spinner.Tick)
}

func (m *model) completeSubmission(out workflow.Outcome) tea.Cmd {
	if !m.workflow.Complete(out) {
		return nil
	}
	if out.Err != nil {
		m.infoMessage = "Processing failed. Press Enter to try again."
		_, cmd := m.presenter.Show(notify.KindError, "", workflow.UserMessage(out.Err), notify.ContainerInput)
		return cmd
	}
	m.renderer.Reset()
	m.viewport.GotoTop()
	m.viewportDirty = true
	m.infoMessage = "Results ready. Use tab to switch panes and alt+p/t/i to export."
	return nil
}

func (m *model) requestExport(f export.Format) tea.Cmd {
	if m.workflow.State() != workflow.ShowingResults {
		m.infoMessage = "Export becomes available once results are shown."
		return nil
	}
	_, cmd, err := m.exporter.Export(f)
	if err != nil {
		m.log.Warn("export dispatch failed", logger.Error(err))
		return nil
	}
	return cmd
}

// visibleContainers lists the notification containers currently drawn.
func (m *model) visibleContainers() []notify.Container {
	if m.workflow.State() == workflow.ShowingResults && !m.paletteOpen {
		return []notify.Container{notify.ContainerInput, notify.ContainerExport}
	}
	return []notify.Container{notify.ContainerInput}
}

// sweepNotifications drops anything whose expiry timer was lost.
func (m *model) sweepNotifications() {
	if n := m.presenter.Sweep(time.Now()); n > 0 {
		m.log.Debug("swept expired notifications", logger.Int("count", n))
	}
}

func (m *model) tabChanged() {
	m.viewport.GotoTop()
	m.viewportDirty = true
}

// applyThemeProjection redraws everything derived from the current theme.
func (m *model) applyThemeProjection() {
	m.styles = newStyles(m.theme.Palette())
	m.viewportDirty = true
}

func (m *model) scroll(msg tea.KeyMsg) bool {
	if m.workflow.State() != workflow.ShowingResults {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	default:
		return false
	}
	return true
}

func (m *model) resize(width, height int) {
	m.layout.Update(width, height)
	m.viewport.Width = m.layout.viewportWidth
	m.viewport.Height = m.layout.viewportHeight
	m.urlInput.Width = m.layout.inputWidth
	m.help.Width = width
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewportDirty = false
	result, ok := m.workflow.Result()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	active := m.router.Active()
	content := m.renderer.Render(result.SubmissionID, active, m.theme.Palette().GlamourStyle, m.viewport.Width-2, result.Pane(active))
	m.viewport.SetContent(content)
}
