package scene

import (
	"github.com/lixenwraith/stardrift/render"
)

// drawStars plots the starfield as a background pass: no depth writes, so
// any geometry drawn afterwards covers the stars behind it.
// Brightness twinkles on a per-star phase derived at creation; no star
// state mutates after startup
func (c *Context) drawStars(v view) {
	for i := range c.Stars {
		s := &c.Stars[i]
		sx, sy, _, ok := v.project(s.Pos)
		if !ok {
			continue
		}
		x, y := int(sx), int(sy)
		if y >= v.viewH {
			continue
		}

		// Triangle wave over ~96 frames, offset by the star's phase
		t := (c.frame + uint64(s.phase)) % 96
		tw := float64(t) / 95.0
		if tw > 0.5 {
			tw = 1 - tw
		}
		b := 0.45 + 1.1*tw

		glyph := '.'
		if b > 0.8 {
			glyph = '+'
		}
		c.buf.SetFgOnly(x, y, glyph, render.Scale(render.RGBWhite, b))
	}
}
