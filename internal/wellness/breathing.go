// Package wellness implements the mindfulness tools: guided breathing, the
// meditation countdown, ambience sounds and the rotating home-page copy.
package wellness

import "time"

// BreathPhase is one step of the breathing cycle.
type BreathPhase struct {
	Label    string
	Duration time.Duration
}

// BreathPhases is the 4-4-4 inhale/hold/exhale cycle.
var BreathPhases = []BreathPhase{
	{Label: "Inhale", Duration: 4 * time.Second},
	{Label: "Hold", Duration: 4 * time.Second},
	{Label: "Exhale", Duration: 4 * time.Second},
}

const BreathIdleLabel = "Press Start to Breathe"

// Breathing cycles through BreathPhases while running. Like the exercise
// timer it tags each run with a generation so a restart never leaves two
// phase sources advancing the same cycle.
type Breathing struct {
	phaseLen   time.Duration
	phase      int
	running    bool
	generation int
}

// NewBreathing returns a stopped cycle whose phases each last phaseLen.
// A non-positive phaseLen keeps the built-in phase durations.
func NewBreathing(phaseLen time.Duration) Breathing {
	return Breathing{phaseLen: phaseLen}
}

// Start begins at the first phase and returns the generation to tag phase
// advances with.
func (b *Breathing) Start() int {
	b.generation++
	b.phase = 0
	b.running = true
	return b.generation
}

func (b *Breathing) Stop() {
	b.generation++
	b.running = false
}

// Advance moves to the next phase, wrapping around. Stale generations are
// ignored.
func (b *Breathing) Advance(generation int) bool {
	if !b.running || generation != b.generation {
		return false
	}
	b.phase = (b.phase + 1) % len(BreathPhases)
	return true
}

func (b Breathing) Running() bool   { return b.running }
func (b Breathing) Phase() int      { return b.phase }
func (b Breathing) Generation() int { return b.generation }

// PhaseDuration is how long the current phase lasts.
func (b Breathing) PhaseDuration() time.Duration {
	if b.phaseLen > 0 {
		return b.phaseLen
	}
	return BreathPhases[b.phase].Duration
}

// Label is the text shown inside the breathing circle.
func (b Breathing) Label() string {
	if !b.running {
		return BreathIdleLabel
	}
	return BreathPhases[b.phase].Label + "..."
}
