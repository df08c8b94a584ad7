package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Config wires the scheduler to the scene and input source
type Config struct {
	// FPS is the frame cadence; every tick invokes Step once
	FPS int

	// Step applies one frame of state change and renders
	Step func()

	// OnEvent dispatches one input event; returning false stops the loop
	OnEvent func(ev tcell.Event) bool

	// Events is the channel fed by the input reader goroutine
	// A closed channel stops the loop
	Events <-chan tcell.Event
}

// Scheduler drives the update step at a fixed cadence, indefinitely,
// interleaving input events as they arrive on the same goroutine.
// Events and frames are serialized here: handlers never run concurrently
// with Step, so scene state needs no locking.
type Scheduler struct {
	cfg Config

	stopCh   chan struct{}
	stopOnce sync.Once

	frames      atomic.Uint64
	framePanics atomic.Uint64
	lastPanic   atomic.Value
}

// New creates a scheduler; Run must be called to start it
func New(cfg Config) *Scheduler {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	return &Scheduler{
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// Run blocks, driving frames and dispatching events until Stop is called,
// OnEvent returns false, or the event channel closes
func (s *Scheduler) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return

		case ev, ok := <-s.cfg.Events:
			if !ok {
				return
			}
			if s.cfg.OnEvent != nil && !s.cfg.OnEvent(ev) {
				return
			}

		case <-ticker.C:
			// By the time Step runs the ticker has already armed the next
			// tick, so a frame that panics cannot stop the loop
			s.runFrame()
		}
	}
}

// Stop ends the loop; safe to call multiple times and from handlers
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// runFrame invokes Step with panic containment
// A failed frame loses only its own remaining work; no retries, no logging
func (s *Scheduler) runFrame() {
	defer func() {
		if r := recover(); r != nil {
			s.framePanics.Add(1)
			// Rendered to a string so consecutive panics of different
			// concrete types keep the atomic.Value consistently typed
			s.lastPanic.Store(fmt.Sprint(r))
		}
	}()

	s.frames.Add(1)
	if s.cfg.Step != nil {
		s.cfg.Step()
	}
}

// Frames returns the number of frames started
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// FramePanics returns how many frames panicked and the most recent message
// Surfaced once at shutdown; the loop itself stays silent
func (s *Scheduler) FramePanics() (uint64, string) {
	last, _ := s.lastPanic.Load().(string)
	return s.framePanics.Load(), last
}
