package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Manager owns the speaker and the ambient pad
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambient     *beep.Ctrl
	initialized bool
}

// NewManager creates a manager; Initialize must be called before playback
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
// Failure is expected to be non-fatal for the caller; the scene runs silent
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// StartAmbient begins the space pad; no-op if already playing
func (m *Manager) StartAmbient() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.ambient != nil && !m.ambient.Paused {
		return
	}
	if m.ambient != nil {
		m.ambient.Paused = false
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewDrone(sampleRate)}
	m.ambient = ctrl
	m.mixer.Add(ctrl)
}

// ToggleAmbient pauses or resumes the pad, returns the new playing state
func (m *Manager) ToggleAmbient() bool {
	m.mu.Lock()

	if !m.initialized {
		m.mu.Unlock()
		return false
	}
	if m.ambient == nil {
		m.mu.Unlock()
		m.StartAmbient()
		return true
	}

	m.ambient.Paused = !m.ambient.Paused
	playing := !m.ambient.Paused
	m.mu.Unlock()
	return playing
}

// ScrollTick plays a short soft tick on wheel events
func (m *Manager) ScrollTick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	m.mixer.Add(beep.Take(sampleRate.N(20*time.Millisecond), sine))
}

// Cleanup stops all sound and releases the mixer
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	if m.ambient != nil {
		m.ambient.Paused = true
	}
	m.mixer.Clear()
	m.initialized = false
}
