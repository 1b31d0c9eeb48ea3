package ui

import "testing"

func TestHUDTracksPreviousThreshold(t *testing.T) {
	h := &HUD{}
	h.SetExp(0, 100)
	if h.prev != 0 {
		t.Fatalf("prev = %d at the start", h.prev)
	}
	h.SetExp(100, 150)
	if h.prev != 100 {
		t.Fatalf("prev = %d after level up, want 100", h.prev)
	}
	h.SetExp(120, 150)
	if h.prev != 100 {
		t.Fatalf("prev = %d after gaining exp, want 100", h.prev)
	}
	h.SetExp(0, 100)
	if h.prev != 0 {
		t.Fatalf("prev = %d after reset, want 0", h.prev)
	}
}
