package util

import (
	"fmt"
	"math"
)

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Round rounds half away from zero, matching how the calculator displays
// its results.
func Round(v float64) int {
	return int(math.Round(v))
}

// Wrap moves an index around a ring of n items.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// FormatClock renders seconds as MM:SS, clamping negatives to zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
