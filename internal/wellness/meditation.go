package wellness

import (
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/util"
)

// Meditation is a minutes-long countdown that counts completed sessions.
// Stop pauses the countdown without resetting it.
type Meditation struct {
	defaultMinutes int
	total          int
	remaining      int
	running        bool
	generation     int
	sessions       int
}

// NewMeditation returns a stopped countdown showing defaultMinutes.
func NewMeditation(defaultMinutes int) Meditation {
	if defaultMinutes <= 0 {
		defaultMinutes = config.DefaultMeditationMins
	}
	return Meditation{
		defaultMinutes: defaultMinutes,
		total:          defaultMinutes * 60,
		remaining:      defaultMinutes * 60,
	}
}

// ParseSeconds reads the minutes field, which may be fractional ("2.5" is
// 150 seconds). Empty, non-numeric or non-positive values use fallback
// minutes. The result is at least one second and capped at
// MaxMeditationMinutes.
func ParseSeconds(s string, fallbackMinutes int) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fallbackMinutes * 60
	}
	limit := config.MaxMeditationMinutes * 60
	secs := math.Min(math.Round(f*60), float64(limit))
	return util.Clamp(int(secs), 1, limit)
}

// Start resets the countdown to the requested minutes and begins a new run,
// cancelling any earlier one.
func (m *Meditation) Start(minutesInput string) int {
	m.total = ParseSeconds(minutesInput, m.defaultMinutes)
	m.remaining = m.total
	m.generation++
	m.running = true
	return m.generation
}

// Stop pauses the countdown where it is.
func (m *Meditation) Stop() {
	m.generation++
	m.running = false
}

// Tick applies one second. It reports true on the tick that completes the
// session, after which the session count has been incremented.
func (m *Meditation) Tick(generation int) bool {
	if !m.running || generation != m.generation {
		return false
	}
	m.remaining--
	if m.remaining > 0 {
		return false
	}
	m.remaining = 0
	m.running = false
	m.generation++
	m.sessions++
	return true
}

// SetSessions seeds the completed-session counter, e.g. from storage.
func (m *Meditation) SetSessions(n int) {
	if n < 0 {
		n = 0
	}
	m.sessions = n
}

// Minutes is the session length rounded to whole minutes, at least one.
func (m Meditation) Minutes() int {
	return util.Clamp(util.Round(float64(m.total)/60), 1, config.MaxMeditationMinutes)
}

func (m Meditation) Running() bool   { return m.running }
func (m Meditation) Remaining() int  { return m.remaining }
func (m Meditation) Seconds() int    { return m.total }
func (m Meditation) Sessions() int   { return m.sessions }
func (m Meditation) Generation() int { return m.generation }
func (m Meditation) Display() string { return util.FormatClock(m.remaining) }

// Progress is the completed fraction of the current session in [0, 1].
func (m Meditation) Progress() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.total-m.remaining) / float64(m.total)
}
