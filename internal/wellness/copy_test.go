package wellness

import (
	"math/rand"
	"testing"
)

func TestSloganRotatorWraps(t *testing.T) {
	var r SloganRotator
	if r.Current() != Slogans[0] {
		t.Fatalf("Current = %q", r.Current())
	}
	for i := 1; i <= len(Slogans); i++ {
		got := r.Next()
		if want := Slogans[i%len(Slogans)]; got != want {
			t.Fatalf("Next #%d = %q, want %q", i, got, want)
		}
	}
}

func TestTipOfTheDay(t *testing.T) {
	tip := TipOfTheDay(rand.New(rand.NewSource(1)))
	found := false
	for _, candidate := range Tips {
		if candidate == tip {
			found = true
		}
	}
	if !found {
		t.Fatalf("tip %q not in Tips", tip)
	}
	if TipOfTheDay(nil) == "" {
		t.Fatalf("expected a tip from the global source")
	}
}
