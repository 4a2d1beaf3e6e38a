package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name           string
		width          int
		height         int
		viewportWidth  int
		viewportHeight int
		inputWidth     int
	}{
		{name: "narrow", width: 80, height: 24, viewportWidth: 76, viewportHeight: 6, inputWidth: 70},
		{name: "wide", width: 200, height: 40, viewportWidth: 196, viewportHeight: 20, inputWidth: 90},
		{name: "tiny", width: 20, height: 10, viewportWidth: 40, viewportHeight: 6, inputWidth: 34},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.viewportWidth != tc.viewportWidth {
				t.Fatalf("viewport width mismatch: got %d want %d", layout.viewportWidth, tc.viewportWidth)
			}
			if layout.viewportHeight != tc.viewportHeight {
				t.Fatalf("viewport height mismatch: got %d want %d", layout.viewportHeight, tc.viewportHeight)
			}
			if layout.inputWidth != tc.inputWidth {
				t.Fatalf("input width mismatch: got %d want %d", layout.inputWidth, tc.inputWidth)
			}
		})
	}
}
