package tuitest

import (
	"bytes"
	"io"
)

// terminalQuery is an escape sequence a program may send to probe the
// terminal, paired with the reply a real emulator would give.
type terminalQuery struct {
	pattern  []byte
	response []byte
}

// Bubble Tea, lipgloss and glamour probe cursor position and the default
// foreground/background colours; without replies they stall until timeout.
var terminalQueries = []terminalQuery{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
	{[]byte("\x1b[c"), []byte("\x1b[?62;22c")},
}

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 128)}
}

func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerNext() {
	}
	// Keep a small tail so sequences split across reads are still seen.
	if len(tr.buf) > 256 {
		tr.buf = tr.buf[len(tr.buf)-64:]
	}
}

// answerNext replies to the earliest pending query in the buffer.
func (tr *terminalResponder) answerNext() bool {
	best := -1
	var match terminalQuery
	for _, q := range terminalQueries {
		idx := bytes.Index(tr.buf, q.pattern)
		if idx >= 0 && (best < 0 || idx < best) {
			best = idx
			match = q
		}
	}
	if best < 0 {
		return false
	}
	tr.buf = tr.buf[best+len(match.pattern):]
	_, _ = tr.w.Write(match.response)
	return true
}
