package wellness

import "testing"

func TestMeditationDefaults(t *testing.T) {
	m := NewMeditation(0)
	if m.Display() != "05:00" || m.Running() {
		t.Fatalf("unexpected fresh meditation: %s running=%v", m.Display(), m.Running())
	}
}

func TestMeditationCompletesSession(t *testing.T) {
	m := NewMeditation(5)
	gen := m.Start("1")
	if m.Display() != "01:00" {
		t.Fatalf("Display = %q, want 01:00", m.Display())
	}
	done := 0
	for i := 0; i < 60; i++ {
		if m.Tick(gen) {
			done++
		}
	}
	if done != 1 || m.Sessions() != 1 {
		t.Fatalf("expected one completed session, got done=%d sessions=%d", done, m.Sessions())
	}
	if m.Running() || m.Display() != "00:00" {
		t.Fatalf("expected stopped at 00:00, got %s running=%v", m.Display(), m.Running())
	}
	if m.Progress() != 1 {
		t.Fatalf("Progress = %v, want 1", m.Progress())
	}
}

func TestMeditationStopPauses(t *testing.T) {
	m := NewMeditation(5)
	gen := m.Start("")
	m.Tick(gen)
	m.Tick(gen)
	m.Stop()
	if m.Display() != "04:58" {
		t.Fatalf("Stop should keep remaining time, got %q", m.Display())
	}
	m.Tick(gen)
	if m.Display() != "04:58" {
		t.Fatalf("tick after stop changed display")
	}
}

func TestMeditationRestartCancelsPrevious(t *testing.T) {
	m := NewMeditation(5)
	first := m.Start("2")
	second := m.Start("2")
	m.Tick(first)
	m.Tick(second)
	if m.Remaining() != 119 {
		t.Fatalf("remaining = %d, want 119", m.Remaining())
	}
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 300}, {"abc", 300}, {"0", 300}, {"-2", 300}, {"NaN", 300},
		{"10", 600}, {" 3 ", 180}, {"2.5", 150}, {"0.001", 1}, {"9999", 10800},
	}
	for _, tt := range tests {
		if got := ParseSeconds(tt.in, 5); got != tt.want {
			t.Errorf("ParseSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMeditationFractionalMinutes(t *testing.T) {
	m := NewMeditation(5)
	gen := m.Start("2.5")
	if m.Display() != "02:30" || m.Seconds() != 150 {
		t.Fatalf("Display = %q seconds=%d, want 02:30 and 150", m.Display(), m.Seconds())
	}
	done := false
	for i := 0; i < 150; i++ {
		done = m.Tick(gen)
	}
	if !done || m.Sessions() != 1 {
		t.Fatalf("expected the session to finish on the 150th tick")
	}
	if m.Minutes() != 3 {
		t.Fatalf("Minutes = %d, want 3", m.Minutes())
	}
}
