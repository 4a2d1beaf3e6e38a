package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tubescout/internal/logger"
)

// jobRunner is blocking work executed off the event loop. The returned
// message is fed back into Update once the runner returns.
type jobRunner func(context.Context) (tea.Msg, error)

type jobStartedMsg struct {
	id string
	at time.Time
}

type jobFinishedMsg struct {
	id      string
	elapsed time.Duration
	err     error
	payload tea.Msg
}

// jobBus runs submissions in the background. Every job derives from one base
// context so quitting cancels whatever is in flight. The inflight map is only
// touched from Update.
type jobBus struct {
	ctx      context.Context
	cancel   context.CancelFunc
	log      logger.Logger
	inflight map[string]time.Time
}

func newJobBus(log logger.Logger) *jobBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &jobBus{
		ctx:      ctx,
		cancel:   cancel,
		log:      log.With(logger.String("component", "jobs")),
		inflight: make(map[string]time.Time),
	}
}

// Start announces the job before running it so the UI can show progress
// even when the runner returns immediately.
func (b *jobBus) Start(id string, runner jobRunner) tea.Cmd {
	started := time.Now()
	return tea.Sequence(
		func() tea.Msg { return jobStartedMsg{id: id, at: started} },
		func() tea.Msg { return b.run(id, started, runner) },
	)
}

func (b *jobBus) run(id string, started time.Time, runner jobRunner) jobFinishedMsg {
	payload, err := runner(b.ctx)
	msg := jobFinishedMsg{id: id, elapsed: time.Since(started), err: err, payload: payload}
	if err != nil {
		b.log.Warn("job failed", logger.String("job", id), logger.Duration("elapsed", msg.elapsed), logger.Error(err))
	} else {
		b.log.Info("job finished", logger.String("job", id), logger.Duration("elapsed", msg.elapsed))
	}
	return msg
}

func (b *jobBus) track(msg jobStartedMsg) {
	b.inflight[msg.id] = msg.at
}

func (b *jobBus) untrack(msg jobFinishedMsg) {
	delete(b.inflight, msg.id)
}

// Elapsed reports how long job id has been running.
func (b *jobBus) Elapsed(id string, now time.Time) (time.Duration, bool) {
	at, ok := b.inflight[id]
	if !ok {
		return 0, false
	}
	return now.Sub(at), true
}

// Stop cancels every running job.
func (b *jobBus) Stop() {
	b.cancel()
}
