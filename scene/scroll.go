package scene

import (
	"github.com/lixenwraith/stardrift/vmath"
)

// Wheel accumulates one wheel notch into the virtual scroll position and
// applies the scroll handler. Scrolling down moves further from the top
// (more negative); the top is a hard stop at zero
func (c *Context) Wheel(down bool) {
	offset := c.scroll
	if down {
		offset -= wheelNotch
	} else {
		offset += wheelNotch
	}
	if offset > 0 {
		offset = 0
	}
	c.HandleScroll(offset)
}

// HandleScroll applies scroll-driven motion for one scroll event.
// offset is the signed distance from the top of the page in Q32.32.
//
// The moon spin is a fixed per-event increment, independent of scroll
// magnitude: its spin rate follows event frequency, not distance.
// The camera write is an absolute set from the latest offset, so rapid or
// reordered events overwrite rather than accumulate
func (c *Context) HandleScroll(offset int64) {
	c.scroll = offset

	c.Moon.Rot = vmath.V3Add(c.Moon.Rot, moonSpinDelta)

	c.Cam.Pos.Y = vmath.Mul(offset, cameraScrollScale)
}
