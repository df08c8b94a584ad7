package scene

import (
	"fmt"

	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/vmath"
)

var hudDim = render.RGB{R: 100, G: 100, B: 110}

// drawHUD writes the control help and scroll position on the bottom row
func (c *Context) drawHUD() {
	w, h := c.buf.Size()
	y := h - 1

	c.writeStr(1, y, "q:quit  m:sound  wheel:scroll  drag:orbit", hudDim)

	offset := fmt.Sprintf("top%+d", vmath.ToInt(c.scroll))
	c.writeStr(w-len(offset)-1, y, offset, hudDim)
}

func (c *Context) writeStr(x, y int, s string, fg render.RGB) {
	for _, r := range s {
		c.buf.SetFgOnly(x, y, r, fg)
		x++
	}
}
