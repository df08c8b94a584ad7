package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Surface is the subset of tcell.Screen the buffer flushes through
type Surface interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
}

// Buffer is a compositor with per-cell depth for the 3D pass
// Cells are row-major: cells[y*width + x]
type Buffer struct {
	cells  []Cell
	depth  []float64 // stored as 1/z, larger = closer, 0 = empty
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.depth = make([]float64, size)
	} else {
		b.cells = b.cells[:size]
		b.depth = b.depth[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to the backdrop and empties the depth buffer
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RGBBlack, Bg: RgbBackground}
		b.depth[i] = 0
	}
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set composites a cell with the specified blend mode
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	if r != 0 {
		dst.Rune = r
	}

	switch mode {
	case BlendReplace:
		dst.Fg = fg
		dst.Bg = bg
	case BlendAlpha:
		dst.Fg = Blend(dst.Fg, fg, alpha)
		dst.Bg = Blend(dst.Bg, bg, alpha)
	case BlendAdd:
		dst.Fg = Add(dst.Fg, fg)
		dst.Bg = Add(dst.Bg, bg)
	case BlendScreen:
		dst.Fg = Screen(dst.Fg, fg)
		dst.Bg = Screen(dst.Bg, bg)
	}
}

// SetFgOnly writes rune and foreground while preserving existing background
// Hot path for text, bypasses blend decoding
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Rune = r
	dst.Fg = fg
}

// SetDepth writes a cell only if ooz (1/z) is closer than what is plotted
// Returns true if the write landed
func (b *Buffer) SetDepth(x, y int, ooz float64, r rune, fg, bg RGB) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	if ooz <= b.depth[idx] {
		return false
	}
	b.depth[idx] = ooz
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	return true
}

// DepthAt returns the stored 1/z at a cell, 0 when empty or out of bounds
func (b *Buffer) DepthAt(x, y int) float64 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.depth[y*b.width+x]
}

// CellAt returns the cell contents, zero Cell when out of bounds
func (b *Buffer) CellAt(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush writes the buffer to the surface and presents it
func (b *Buffer) Flush(s Surface) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			s.SetContent(x, y, c.Rune, nil, style)
		}
	}
	s.Show()
}
