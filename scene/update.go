package scene

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Per-frame and per-event increments precomputed in Q32.32
var (
	torusSpinDelta = vmath.FromFloat(parameter.TorusSpinDelta)

	torusSpinVec = vmath.Vec3{
		X: torusSpinDelta,
		Y: torusSpinDelta,
		Z: torusSpinDelta,
	}

	moonSpinDelta = vmath.Vec3{
		X: vmath.FromFloat(parameter.MoonSpinDeltaX),
		Y: vmath.FromFloat(parameter.MoonSpinDeltaY),
		Z: vmath.FromFloat(parameter.MoonSpinDeltaZ),
	}

	cameraScrollScale = vmath.FromFloat(parameter.CameraScrollScale)
	wheelNotch        = vmath.FromFloat(parameter.WheelNotchDistance)
)

// Step applies one frame of state change and renders the scene.
// Invoked once per scheduler tick; purely effectful, no return value.
// Increments are fixed per frame, so perceived speed follows the tick rate
func (c *Context) Step() {
	c.frame++

	// Torus spin: unconditional, every frame, angles left unbounded
	c.Torus.Rot = vmath.V3Add(c.Torus.Rot, torusSpinVec)

	// Advance orbit controls one damping step
	c.Orbit.Update(c.Cam)

	// Render pass: background stars, depth-tested geometry, HUD
	c.buf.Clear()
	v := c.newView()
	c.drawStars(v)
	c.drawTorus(v)
	c.drawMoon(v)
	c.drawHUD()
	c.buf.Flush(c.surface)
}
