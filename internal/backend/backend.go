// Package backend is the boundary to the service that turns a video into
// summary, notes, mind map and Q&A content.
package backend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/csheth/tubescout/internal/tabs"
)

const defaultHTTPTimeout = 2 * time.Minute

// ErrTimeout marks a submission that ran past its deadline.
var ErrTimeout = errors.New("processing timed out")

// Request is one summarization job.
type Request struct {
	SubmissionID string `json:"submissionId"`
	URL          string `json:"url"`
	VideoID      string `json:"videoId"`
	Language     string `json:"language"`
}

// Result carries the markdown shown in each results pane.
type Result struct {
	SubmissionID string `json:"submissionId"`
	Summary      string `json:"summary"`
	Notes        string `json:"notes"`
	MindMap      string `json:"mindmap"`
	QnA          string `json:"qna"`
}

// Pane returns the content rendered under tab t.
func (r Result) Pane(t tabs.Tab) string {
	switch t {
	case tabs.Notes:
		return r.Notes
	case tabs.MindMap:
		return r.MindMap
	case tabs.QnA:
		return r.QnA
	default:
		return r.Summary
	}
}

// Client processes videos.
type Client interface {
	Summarize(ctx context.Context, req Request) (Result, error)
	Name() string
}

// Config selects and tunes a Client.
type Config struct {
	// Mode is "demo" or "http".
	Mode       string
	Endpoint   string
	APIKey     string
	DemoDelay  time.Duration
	RateLimit  float64
	HTTPClient *http.Client
}

const (
	ModeDemo = "demo"
	ModeHTTP = "http"
)

// New builds the client named by cfg.Mode. Anything but "http" is the demo.
func New(cfg Config) (Client, error) {
	if cfg.Mode == ModeHTTP {
		return NewHTTP(cfg)
	}
	return NewDemo(cfg.DemoDelay), nil
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// Per-submission deadlines come from the caller's context.
	return &http.Client{Timeout: defaultHTTPTimeout}
}
