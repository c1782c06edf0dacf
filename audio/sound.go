package audio

import (
	"fmt"
	"sync"
	"time"

	"snake-autopilot/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is one beep: frequency in Hz and length.
type tone struct {
	freq     int
	duration time.Duration
}

var (
	eatTones      = []tone{{880, 50 * time.Millisecond}}
	gameOverTones = []tone{{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 240 * time.Millisecond}}
	recordTones   = []tone{{660, 80 * time.Millisecond}, {880, 80 * time.Millisecond}, {1320, 160 * time.Millisecond}}
)

// SoundManager plays short tones for game events. Until Initialize
// succeeds every Play call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Close()
		sm.initialized = false
	}
}

// OnOutcome plays the tone matching a tick's result, if any.
func (sm *SoundManager) OnOutcome(out game.Outcome) {
	tones := tonesFor(out)
	if tones == nil {
		return
	}

	sm.mu.Lock()
	ready := sm.initialized
	sm.mu.Unlock()
	if !ready {
		return
	}

	if s := sequence(tones); s != nil {
		speaker.Play(s)
	}
}

func tonesFor(out game.Outcome) []tone {
	switch {
	case out.Status == game.Terminate && out.NewRecord:
		return recordTones
	case out.Status == game.Terminate:
		return gameOverTones
	case out.Ate:
		return eatTones
	default:
		return nil
	}
}

func sequence(tones []tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, float64(t.freq))
		if err != nil {
			return nil
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}
	return beep.Seq(parts...)
}
