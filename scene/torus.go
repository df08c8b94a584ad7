package scene

import (
	"math"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/vmath"
)

// lumRamp maps surface luminance to a glyph, dark to bright
var lumRamp = []rune(".,-~:;=!*#$@")

func lumGlyph(l float64) rune {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return lumRamp[int(l*float64(len(lumRamp)-1))]
}

var (
	// lightDir is the fixed world-space light, upper-left, camera side
	lightDir = vmath.V3FNormalize(vmath.Vec3F{X: -0.35, Y: 0.55, Z: 0.75})

	torusColor = render.RGB{R: 40, G: 180, B: 255}
)

// drawTorus rasterizes the parametric torus surface through the depth pass.
// theta runs around the tube, phi around the ring; the ring lies in the XY
// plane before the frame rotation is applied
func (c *Context) drawTorus(v view) {
	rot := vmath.V3ToFloat(c.Torus.Rot)

	for theta := 0.0; theta < 2*math.Pi; theta += parameter.TorusThetaStep {
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		ringX := parameter.TorusMajorRadius + parameter.TorusMinorRadius*cosT

		for phi := 0.0; phi < 2*math.Pi; phi += parameter.TorusPhiStep {
			cosP, sinP := math.Cos(phi), math.Sin(phi)

			p := vmath.Vec3F{
				X: ringX * cosP,
				Y: ringX * sinP,
				Z: parameter.TorusMinorRadius * sinT,
			}
			n := vmath.Vec3F{
				X: cosT * cosP,
				Y: cosT * sinP,
				Z: sinT,
			}

			p = vmath.RotateXYZ(p, rot)
			n = vmath.RotateXYZ(n, rot)

			sx, sy, ooz, ok := v.project(p)
			if !ok {
				continue
			}

			// Cull samples facing away from the camera
			if v.dirToView(n).Z >= 0 {
				continue
			}

			l := vmath.V3FDot(n, lightDir)
			if l < 0.05 {
				l = 0.05
			}

			fg := render.Scale(torusColor, 0.25+0.75*l)
			bg := render.Add(render.RgbBackground, render.Scale(torusColor, 0.10*l))
			c.buf.SetDepth(int(sx), int(sy), ooz, lumGlyph(l), fg, bg)
		}
	}
}
