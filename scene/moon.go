package scene

import (
	"math"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/vmath"
)

var moonBase = render.RGB{R: 205, G: 205, B: 210}

// drawMoon renders the moon as a screen-space shaded disc: the projected
// circle is walked per cell, the disc parameterization gives the surface
// normal, and hash-noise sampled in object space supplies the crater albedo
// so the surface visibly turns as scroll events spin the rotation
func (c *Context) drawMoon(v view) {
	vc := v.toView(c.Moon.Pos)
	if vc.Z < parameter.CameraNearClip {
		return
	}

	invZ := parameter.CameraFocalLength / vc.Z
	cx := v.cx + vc.X*invZ*v.scale*2.0
	cy := v.cy - vc.Y*invZ*v.scale
	radius := parameter.MoonRadius * invZ * v.scale

	if radius < 0.4 {
		c.buf.SetDepth(int(cx), int(cy), 1.0/vc.Z, '*', moonBase, render.RgbBackground)
		return
	}

	rot := vmath.V3ToFloat(c.Moon.Rot)

	minX := int(cx - radius*2 - 1)
	maxX := int(cx + radius*2 + 1)
	minY := int(cy - radius - 1)
	maxY := int(cy + radius + 1)

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			// Disc coords, 2x horizontal for cell aspect, y up
			nx := (float64(sx) + 0.5 - cx) / (radius * 2.0)
			ny := -(float64(sy) + 0.5 - cy) / radius
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)

			// Front of the sphere points against the view direction
			nView := vmath.Vec3F{X: nx, Y: ny, Z: -nz}
			nw := vmath.RotateX(nView, -v.pitch)
			normal := vmath.V3FAdd(
				vmath.V3FAdd(vmath.V3FScale(v.right, nw.X), vmath.V3FScale(v.up, nw.Y)),
				vmath.V3FScale(v.fwd, nw.Z),
			)

			// Undo the moon rotation to sample a stable surface pattern
			obj := vmath.RotateX(vmath.RotateY(vmath.RotateZ(normal, -rot.Z), -rot.Y), -rot.X)

			n1 := vmath.ValueNoise3(c.seed, obj.X*2.5+7, obj.Y*2.5+7, obj.Z*2.5+7)
			n2 := vmath.ValueNoise3(c.seed^0xbeef, obj.X*6+13, obj.Y*6+13, obj.Z*6+13)
			albedo := 0.55 + 0.45*(0.7*n1+0.3*n2)

			l := vmath.V3FDot(normal, lightDir)
			if l < 0 {
				l = 0
			}
			shade := albedo * (0.15 + 0.85*l)

			// Surface bulges toward the camera by nz of the radius
			cellZ := vc.Z - nz*parameter.MoonRadius
			if cellZ < parameter.CameraNearClip {
				continue
			}

			fg := render.Scale(moonBase, shade)
			bg := render.Lerp(render.RgbBackground, fg, 0.15)
			c.buf.SetDepth(sx, sy, 1.0/cellZ, lumGlyph(shade), fg, bg)
		}
	}
}
