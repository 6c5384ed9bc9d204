package wellness

import (
	"fmt"
	"io"
	"sync"
)

// Sound names an ambience track.
type Sound string

const (
	SoundRain  Sound = "rain"
	SoundWaves Sound = "waves"
)

// Sounds lists the ambience tracks in menu order.
func Sounds() []Sound {
	return []Sound{SoundRain, SoundWaves}
}

// Player plays and stops audio. Implementations are best effort.
type Player interface {
	Play(s Sound) error
	Stop(s Sound) error
}

// Ambience keeps at most one track playing.
type Ambience struct {
	player  Player
	playing Sound
}

func NewAmbience(p Player) *Ambience {
	if p == nil {
		p = NopPlayer{}
	}
	return &Ambience{player: p}
}

// Play stops every track, then starts s. Unknown sounds only stop playback.
// A playback error leaves nothing marked as playing.
func (a *Ambience) Play(s Sound) error {
	if err := a.StopAll(); err != nil {
		return err
	}
	if !knownSound(s) {
		return nil
	}
	if err := a.player.Play(s); err != nil {
		return fmt.Errorf("play %s: %w", s, err)
	}
	a.playing = s
	return nil
}

// StopAll stops every track and rewinds them.
func (a *Ambience) StopAll() error {
	var first error
	for _, s := range Sounds() {
		if err := a.player.Stop(s); err != nil && first == nil {
			first = fmt.Errorf("stop %s: %w", s, err)
		}
	}
	a.playing = ""
	return first
}

// Playing returns the current track, or "" when silent.
func (a *Ambience) Playing() Sound {
	return a.playing
}

func knownSound(s Sound) bool {
	for _, k := range Sounds() {
		if k == s {
			return true
		}
	}
	return false
}

// NopPlayer discards all playback requests.
type NopPlayer struct{}

func (NopPlayer) Play(Sound) error { return nil }
func (NopPlayer) Stop(Sound) error { return nil }

// BellPlayer rings the terminal bell when a sound starts. It is the only
// audio a plain terminal offers, used for the timer expiry beep.
type BellPlayer struct {
	mu sync.Mutex
	W  io.Writer
}

func (b *BellPlayer) Play(Sound) error {
	if b == nil || b.W == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.W, "\a")
	return err
}

func (b *BellPlayer) Stop(Sound) error { return nil }

// Beep is the sound requested when a countdown expires.
const Beep Sound = "beep"

// Chime plays the expiry beep through p, ignoring failures the caller does
// not care about. It returns the error for logging.
func Chime(p Player) error {
	if p == nil {
		return nil
	}
	return p.Play(Beep)
}
