package scene

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// view is the per-frame camera basis: a look-at frame toward the scene
// origin, with the orbit pitch applied as a view-space tilt
type view struct {
	eye   vmath.Vec3F
	right vmath.Vec3F
	up    vmath.Vec3F
	fwd   vmath.Vec3F
	pitch float64

	cx, cy float64
	scale  float64
	viewH  int
}

var worldUp = vmath.Vec3F{Y: 1}

// newView derives the projection frame from the current camera position
func (c *Context) newView() view {
	w, h := c.buf.Size()
	viewH := h - parameter.HUDRows
	if viewH < 1 {
		viewH = 1
	}

	eye := vmath.V3ToFloat(c.Cam.Pos)
	fwd := vmath.V3FNormalize(vmath.V3FScale(eye, -1))
	if fwd == (vmath.Vec3F{}) {
		fwd = vmath.Vec3F{Z: -1}
	}
	right := vmath.V3FNormalize(vmath.V3FCross(fwd, worldUp))
	if right == (vmath.Vec3F{}) {
		right = vmath.Vec3F{X: 1}
	}
	up := vmath.V3FCross(right, fwd)

	return view{
		eye:   eye,
		right: right,
		up:    up,
		fwd:   fwd,
		pitch: c.Orbit.Pitch(),
		cx:    float64(w) / 2.0,
		cy:    float64(viewH) / 2.0,
		scale: float64(viewH) * 0.13,
		viewH: viewH,
	}
}

// toView transforms a world-space point into view space (z positive ahead)
func (v view) toView(p vmath.Vec3F) vmath.Vec3F {
	d := vmath.V3FSub(p, v.eye)
	vc := vmath.Vec3F{
		X: vmath.V3FDot(d, v.right),
		Y: vmath.V3FDot(d, v.up),
		Z: vmath.V3FDot(d, v.fwd),
	}
	return vmath.RotateX(vc, v.pitch)
}

// dirToView rotates a world-space direction into view space (no translation)
func (v view) dirToView(d vmath.Vec3F) vmath.Vec3F {
	vc := vmath.Vec3F{
		X: vmath.V3FDot(d, v.right),
		Y: vmath.V3FDot(d, v.up),
		Z: vmath.V3FDot(d, v.fwd),
	}
	return vmath.RotateX(vc, v.pitch)
}

// project maps a world point to buffer coordinates
// Returns screen x/y, 1/z for depth testing, and false when behind the
// near clip. The 2x horizontal factor corrects the 1:2 terminal cell aspect
func (v view) project(p vmath.Vec3F) (sx, sy, ooz float64, ok bool) {
	vc := v.toView(p)
	if vc.Z < parameter.CameraNearClip {
		return 0, 0, 0, false
	}
	invZ := parameter.CameraFocalLength / vc.Z
	sx = v.cx + vc.X*invZ*v.scale*2.0
	sy = v.cy - vc.Y*invZ*v.scale
	return sx, sy, 1.0 / vc.Z, true
}
