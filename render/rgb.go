package render

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}

	// RgbBackground is the deep-space backdrop
	RgbBackground = RGB{R: 4, G: 6, B: 14}
)

// Lerp interpolates between two colors, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Scale multiplies each channel by s, clamped
func Scale(c RGB, s float64) RGB {
	return RGB{clampChan(float64(c.R) * s), clampChan(float64(c.G) * s), clampChan(float64(c.B) * s)}
}

// Blend mixes src over dst with the given alpha
func Blend(dst, src RGB, alpha float64) RGB {
	return Lerp(dst, src, alpha)
}

// Add sums channels, clamped at white
func Add(dst, src RGB) RGB {
	return RGB{
		R: clampChan(float64(dst.R) + float64(src.R)),
		G: clampChan(float64(dst.G) + float64(src.G)),
		B: clampChan(float64(dst.B) + float64(src.B)),
	}
}

// Screen applies the screen blend: 255 - (255-d)(255-s)/255
// Brightens without hard clipping, used for glow
func Screen(dst, src RGB) RGB {
	sc := func(d, s uint8) uint8 {
		return uint8(255 - int(255-int(d))*int(255-int(s))/255)
	}
	return RGB{sc(dst.R, src.R), sc(dst.G, src.G), sc(dst.B, src.B)}
}

func clampChan(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
