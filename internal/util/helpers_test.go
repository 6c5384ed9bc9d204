package util

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp high = %d", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp low = %d", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp mid = %d", got)
	}
}

func TestRound(t *testing.T) {
	if Round(2.5) != 3 || Round(2.49) != 2 || Round(-1.5) != -2 {
		t.Fatalf("unexpected rounding")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 6, 0}, {6, 6, 0}, {-1, 6, 5}, {7, 6, 1}, {3, 0, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{30: "00:30", 5: "00:05", 0: "00:00", -3: "00:00", 300: "05:00", 65: "01:05"}
	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}
