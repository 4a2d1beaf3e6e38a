package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one screen's worth of output between clear-screen sequences.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

// Lines splits the plain text of the frame.
func (f Frame) Lines() []string {
	if f.Plain == "" {
		return nil
	}
	return strings.Split(f.Plain, "\n")
}

var (
	clearScreen = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	// escapes matches OSC strings, CSI sequences and charset shifts.
	escapes = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|\x1b\[[0-9;?]*[A-Za-z]|[\x0e\x0f]`)
)

func parseFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, chunk := range clearScreen.Split(stream, -1) {
		chunk = strings.TrimPrefix(strings.Trim(chunk, "\x00"), "\x1b[H")
		plain := tidy(stripANSI(chunk))
		if strings.TrimSpace(plain) == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: chunk, Plain: plain})
	}
	if frames == nil && stream != "" {
		frames = []Frame{{ANSI: stream, Plain: tidy(stripANSI(stream))}}
	}
	return frames
}

// FinalFrame returns the last captured frame, or false when nothing was drawn.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// FirstFrameContaining returns the earliest frame showing text.
func (r *Recording) FirstFrameContaining(text string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for _, f := range r.Frames {
		if strings.Contains(f.Plain, text) {
			return f, true
		}
	}
	return Frame{}, false
}

// Contains reports whether the program ever drew text. Renderers that only
// repaint changed lines never clear the screen, so the whole stream is
// searched rather than individual frames.
func (r *Recording) Contains(text string) bool {
	if r == nil {
		return false
	}
	return strings.Contains(stripANSI(strings.ReplaceAll(string(r.Raw), "\r", "")), text)
}

func stripANSI(s string) string {
	return escapes.ReplaceAllString(s, "")
}

// tidy drops trailing spaces on every line and trailing blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
