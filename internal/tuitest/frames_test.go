package tuitest

import (
	"bytes"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mTubeScout\x1b[0m   \r\nidle\x1b[2J\x1b[HResults ready\n\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %#v", len(frames), frames)
	}
	if frames[0].Plain != "TubeScout\nidle" {
		t.Fatalf("unexpected first frame %q", frames[0].Plain)
	}
	rec := &Recording{Raw: raw, Frames: frames}
	final, ok := rec.FinalFrame()
	if !ok || final.Plain != "Results ready" {
		t.Fatalf("unexpected final frame %q", final.Plain)
	}
	if !rec.Contains("idle") || rec.Contains("error") {
		t.Fatal("Contains mismatch")
	}
	if f, ok := rec.FirstFrameContaining("Results"); !ok || f.Index != 1 {
		t.Fatalf("unexpected frame %+v", f)
	}
}

func TestTerminalResponderAnswersInOrder(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("\x1b]11;?\x07junk\x1b[6"))
	tr.Process([]byte("n"))
	want := "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}
