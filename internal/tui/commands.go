package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tubescout/internal/workflow"
)

type submissionResultMsg struct {
	outcome workflow.Outcome
}

type prefsChangedMsg struct{}

func submitJob(job workflow.Job) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		out := job(parent)
		return submissionResultMsg{outcome: out}, out.Err
	}
}

// waitForPrefsChange blocks on the preference watcher. A closed channel
// ends the subscription.
func waitForPrefsChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return prefsChangedMsg{}
	}
}
