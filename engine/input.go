package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/parameter"
)

// StartInputReader feeds screen events into a channel so the scheduler can
// interleave them with frame ticks on a single goroutine.
// The channel closes when the screen is finalized (PollEvent returns nil).
// Events are dropped rather than blocking when the consumer falls behind.
func StartInputReader(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, parameter.InputChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			select {
			case ch <- ev:
			default:
			}
		}
	})
	return ch
}
