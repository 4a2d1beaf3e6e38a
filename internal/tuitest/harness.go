package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 120
	defaultHeight  = 32
	defaultTimeout = 5 * time.Second
)

// Step is one scripted interaction. Delay is waited first, then WaitFor
// blocks until the rendered output shows that text, then Input is written.
type Step struct {
	Delay   time.Duration
	WaitFor string
	Input   []byte
}

// Config describes the program to drive and the script to replay.
type Config struct {
	Command          []string
	Dir              string
	Env              []string
	Width            int
	Height           int
	Steps            []Step
	Timeout          time.Duration
	AllowedExitCodes []int
	AllowInterrupt   bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// exitAllowed reports whether err from cmd.Wait counts as a clean exit.
func (c Config) exitAllowed(err error) bool {
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && slices.Contains(c.AllowedExitCodes, exitErr.ExitCode()) {
		return true
	}
	return c.AllowInterrupt && strings.Contains(err.Error(), "signal: interrupt")
}

// Recording holds everything the program wrote plus the parsed frames.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// session owns one PTY-backed process and the bytes it has written so far.
type session struct {
	ptmx *os.File

	mu      sync.Mutex
	output  bytes.Buffer
	updated chan struct{}
	drained chan struct{}
}

func (s *session) pump() {
	defer close(s.drained)
	responder := newTerminalResponder(s.ptmx)
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			responder.Process(buf[:n])
			s.mu.Lock()
			s.output.Write(buf[:n])
			s.mu.Unlock()
			select {
			case s.updated <- struct{}{}:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

func (s *session) snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.output.Bytes())
}

func (s *session) waitFor(ctx context.Context, text string) error {
	for {
		if strings.Contains(stripANSI(string(s.snapshot())), text) {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("tuitest: waiting for %q: %w", text, ctx.Err())
		case <-s.drained:
			return fmt.Errorf("tuitest: program exited before showing %q", text)
		case <-s.updated:
		}
	}
}

func (s *session) play(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("tuitest: script interrupted: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if step.WaitFor != "" {
			if err := s.waitFor(ctx, step.WaitFor); err != nil {
				return err
			}
		}
		if len(step.Input) > 0 {
			if _, err := s.ptmx.Write(step.Input); err != nil {
				return fmt.Errorf("tuitest: write input: %w", err)
			}
		}
	}
	return nil
}

// Run starts cfg.Command inside a PTY, replays the script and records every
// byte written to the terminal until the program exits.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cfg = cfg.withDefaults()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Height), Cols: uint16(cfg.Width)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	s := &session{ptmx: ptmx, updated: make(chan struct{}, 1), drained: make(chan struct{})}
	go s.pump()

	start := time.Now()
	if err := s.play(ctx, cfg.Steps); err != nil {
		return nil, err
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()
	select {
	case err := <-exited:
		if !cfg.exitAllowed(err) {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	_ = ptmx.Close()
	<-s.drained

	raw := s.snapshot()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(start)}, nil
}

// buildEnv layers extra over the current environment and makes sure the
// child sees a colour-capable TERM.
func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	if !slices.ContainsFunc(env, func(entry string) bool { return strings.HasPrefix(entry, "TERM=") }) {
		env = append(env, "TERM=xterm-256color")
	}
	return env
}

var (
	KeyEnter = []byte{'\r'}
	KeyCtrlC = []byte{3}
	KeyEsc   = []byte{27}
	KeyTab   = []byte{'\t'}
	// KeyCtrlK opens the command palette.
	KeyCtrlK = []byte{11}
	// KeyCtrlL cycles the output language.
	KeyCtrlL = []byte{12}
	// KeyCtrlT toggles the theme.
	KeyCtrlT = []byte{20}
)

// Alt returns the bytes a terminal sends for alt+r.
func Alt(r byte) []byte {
	return []byte{27, r}
}

// Type returns the bytes for typing s.
func Type(s string) []byte {
	return []byte(s)
}
