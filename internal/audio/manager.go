package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	shootDuration     = 120 * time.Millisecond
	explosionDuration = 600 * time.Millisecond
)

// Manager plays sounds on the local speaker through a single mixer.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       Track
	volume      float64 // Base-2 exponent applied to every sound
	initialized bool
}

// NewManager creates a manager. volume is a base-2 exponent: 0 is full
// scale, -1 half, -3 an eighth.
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything. The speaker itself stays open.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()

	m.music = nil
	m.track = TrackNone
	m.initialized = false
}

// Shoot plays the laser blip.
func (m *Manager) Shoot() {
	m.play(beep.Take(sampleRate.N(shootDuration), newLaserGenerator(sampleRate)))
}

// Explosion plays the crash rumble.
func (m *Manager) Explosion() {
	m.play(beep.Take(sampleRate.N(explosionDuration), newExplosionGenerator(sampleRate, time.Now().UnixNano())))
}

// Music switches the looping background theme. Selecting the track that is
// already playing does nothing.
func (m *Manager) Music(t Track) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || t == m.track {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if m.music != nil {
		m.music.Streamer = nil // Drained by the mixer on the next buffer
	}
	m.music = nil
	m.track = t

	var theme beep.Streamer
	switch t {
	case TrackMenu:
		theme = newThemeGenerator(sampleRate, menuMelody, 400*time.Millisecond)
	case TrackGame:
		theme = newThemeGenerator(sampleRate, gameMelody, 200*time.Millisecond)
	default:
		return
	}

	m.music = &beep.Ctrl{Streamer: m.withVolume(theme, -1)}
	m.mixer.Add(m.music)
}

// Track returns the current background theme.
func (m *Manager) Track() Track {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.track
}

// play adds a one-shot effect to the mixer.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Add(m.withVolume(s, 0))
	speaker.Unlock()
}

// withVolume scales a streamer by the manager volume plus offset, both
// base-2 exponents.
func (m *Manager) withVolume(s beep.Streamer, offset float64) beep.Streamer {
	vol := m.volume + offset
	return &effects.Volume{Streamer: s, Base: 2, Volume: vol, Silent: math.IsInf(vol, -1)}
}

var _ Player = (*Manager)(nil)
