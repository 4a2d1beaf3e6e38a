// Package workflow drives a single video submission from validation through
// the backend call to either results or an error.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/csheth/tubescout/internal/backend"
	"github.com/csheth/tubescout/internal/logger"
	"github.com/csheth/tubescout/internal/youtube"
)

// DefaultTimeout bounds a backend call when none is configured.
const DefaultTimeout = 60 * time.Second

// ErrBusy is returned by Begin while a submission is in flight.
var ErrBusy = errors.New("a submission is already in progress")

// Messages shown to the user.
const (
	MessageEmptyURL     = "Please enter a URL"
	MessageInvalidURL   = "Please enter a valid YouTube video URL"
	MessageBackendError = "An error occurred while processing the video. Please try again."
)

// State is the submission lifecycle.
type State string

const (
	Idle           State = "idle"
	Validating     State = "validating"
	Loading        State = "loading"
	ShowingResults State = "showing-results"
	Error          State = "error"
)

// Transition records one state change.
type Transition struct {
	From         State
	To           State
	SubmissionID string
	At           time.Time
}

// Submission identifies an accepted request.
type Submission struct {
	ID        string
	URL       string
	VideoID   string
	Language  string
	StartedAt time.Time
}

// Outcome is what a Job reports back.
type Outcome struct {
	SubmissionID string
	Result       backend.Result
	Err          error
	Duration     time.Duration
}

// Job performs the backend call for one submission. It is safe to run off
// the UI goroutine; it touches no workflow state.
type Job func(ctx context.Context) Outcome

// Options tunes a Workflow.
type Options struct {
	Timeout time.Duration
	Logger  logger.Logger
	// NewID overrides submission ID generation.
	NewID func() string
	Now   func() time.Time
}

// Workflow is the submission state machine. Only one submission can be in
// flight; its methods are meant to be called from a single goroutine.
type Workflow struct {
	client  backend.Client
	timeout time.Duration
	log     logger.Logger
	newID   func() string
	now     func() time.Time

	state   State
	current *Submission
	result  *backend.Result
	lastErr error
	history []Transition
}

// New returns an idle workflow that submits to client.
func New(client backend.Client, opts Options) *Workflow {
	w := &Workflow{
		client:  client,
		timeout: opts.Timeout,
		log:     opts.Logger,
		newID:   opts.NewID,
		now:     opts.Now,
		state:   Idle,
	}
	if w.timeout <= 0 {
		w.timeout = DefaultTimeout
	}
	if w.log == nil {
		w.log = logger.NewNop()
	}
	w.log = w.log.With(logger.String("component", "workflow"))
	if w.newID == nil {
		w.newID = uuid.NewString
	}
	if w.now == nil {
		w.now = time.Now
	}
	return w
}

// Begin validates rawURL and, when it passes, moves to loading and returns
// the job to run. Validation failures return to the state Begin started
// from, so results already on screen stay there, and no job is produced. A
// second Begin while loading fails with ErrBusy and changes nothing.
func (w *Workflow) Begin(rawURL, language string) (Submission, Job, error) {
	if w.state == Loading {
		return Submission{}, nil, ErrBusy
	}

	prev := w.state
	w.transition(Validating, "")
	url := strings.TrimSpace(rawURL)
	if err := youtube.Validate(url); err != nil {
		w.lastErr = err
		w.transition(prev, "")
		w.log.Info("submission rejected", logger.Error(err))
		return Submission{}, nil, err
	}

	videoID, _ := youtube.VideoID(url)
	sub := Submission{
		ID:        w.newID(),
		URL:       url,
		VideoID:   videoID,
		Language:  language,
		StartedAt: w.now(),
	}
	w.current = &sub
	w.result = nil
	w.lastErr = nil
	w.transition(Loading, sub.ID)
	w.log.Info("submission started",
		logger.String("submission", sub.ID),
		logger.String("video", sub.VideoID),
		logger.String("language", sub.Language))

	return sub, w.job(sub), nil
}

func (w *Workflow) job(sub Submission) Job {
	client := w.client
	timeout := w.timeout
	req := backend.Request{
		SubmissionID: sub.ID,
		URL:          sub.URL,
		VideoID:      sub.VideoID,
		Language:     sub.Language,
	}
	return func(parent context.Context) Outcome {
		if parent == nil {
			parent = context.Background()
		}
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		started := time.Now()
		result, err := client.Summarize(ctx, req)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %v", backend.ErrTimeout, timeout, err)
		}
		return Outcome{
			SubmissionID: sub.ID,
			Result:       result,
			Err:          err,
			Duration:     time.Since(started),
		}
	}
}

// Complete applies a job outcome. Outcomes for anything but the in-flight
// submission are ignored and reported as false.
func (w *Workflow) Complete(out Outcome) bool {
	if w.state != Loading || w.current == nil || w.current.ID != out.SubmissionID {
		w.log.Debug("ignoring stale outcome", logger.String("submission", out.SubmissionID))
		return false
	}
	id := w.current.ID

	if out.Err != nil {
		w.lastErr = out.Err
		w.transition(Error, id)
		w.log.Warn("submission failed",
			logger.String("submission", id),
			logger.Duration("duration", out.Duration),
			logger.Error(out.Err))
		w.transition(Idle, id)
		return true
	}

	result := out.Result
	result.SubmissionID = id
	w.result = &result
	w.transition(ShowingResults, id)
	w.log.Info("submission succeeded",
		logger.String("submission", id),
		logger.Duration("duration", out.Duration))
	return true
}

func (w *Workflow) transition(to State, submissionID string) {
	from := w.state
	w.state = to
	w.history = append(w.history, Transition{From: from, To: to, SubmissionID: submissionID, At: w.now()})
	w.log.Debug("state transition",
		logger.String("from", string(from)),
		logger.String("to", string(to)),
		logger.String("submission", submissionID))
}

// State returns the current lifecycle state.
func (w *Workflow) State() State { return w.state }

// Busy reports whether submissions are currently refused.
func (w *Workflow) Busy() bool { return w.state == Loading }

// Current returns the in-flight or most recently completed submission.
func (w *Workflow) Current() (Submission, bool) {
	if w.current == nil {
		return Submission{}, false
	}
	return *w.current, true
}

// Result returns the content of the last successful submission, if the
// workflow is showing it.
func (w *Workflow) Result() (backend.Result, bool) {
	if w.state != ShowingResults || w.result == nil {
		return backend.Result{}, false
	}
	return *w.result, true
}

// LastError is the most recent validation or backend failure.
func (w *Workflow) LastError() error { return w.lastErr }

// History returns every recorded transition, oldest first.
func (w *Workflow) History() []Transition {
	out := make([]Transition, len(w.history))
	copy(out, w.history)
	return out
}

// Timeout is the bound applied to each backend call.
func (w *Workflow) Timeout() time.Duration { return w.timeout }

// BackendName names the processing backend in use.
func (w *Workflow) BackendName() string {
	if w.client == nil {
		return "none"
	}
	return w.client.Name()
}

// UserMessage turns any workflow error into the text shown to the user.
// Backend details never reach the screen.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, youtube.ErrEmptyURL):
		return MessageEmptyURL
	case errors.Is(err, youtube.ErrInvalidURL):
		return MessageInvalidURL
	default:
		return MessageBackendError
	}
}
