package scene

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Orbit lets pointer drag swing the camera around the scene origin.
// Horizontal drag sets a target yaw that moves the camera on its orbit
// circle; vertical drag sets a target pitch applied as a view tilt.
// Update advances toward the targets by a fixed per-frame damping step
type Orbit struct {
	yaw, pitch             float64
	targetYaw, targetPitch float64
	radius                 float64

	dragging     bool
	lastX, lastY int
}

// NewOrbit creates orbit controls at the default viewing distance
func NewOrbit() *Orbit {
	return &Orbit{
		radius: parameter.CameraOrbitRadius,
	}
}

// HandleMouse accumulates drag input into the orbit targets
// Wheel buttons are routed to the scroll handler before this is called
func (o *Orbit) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	if buttons&tcell.Button1 == 0 {
		o.dragging = false
		return
	}

	if o.dragging {
		o.targetYaw += float64(x-o.lastX) * parameter.OrbitYawPerCell
		o.targetPitch += float64(y-o.lastY) * parameter.OrbitPitchPerCell
		if o.targetPitch > parameter.OrbitPitchLimit {
			o.targetPitch = parameter.OrbitPitchLimit
		}
		if o.targetPitch < -parameter.OrbitPitchLimit {
			o.targetPitch = -parameter.OrbitPitchLimit
		}
	}
	o.dragging = true
	o.lastX, o.lastY = x, y
}

// Update advances the orbit state one step and writes the camera X/Z
// The camera's Y belongs to the scroll handler and is left untouched
func (o *Orbit) Update(cam *Camera) {
	o.yaw += (o.targetYaw - o.yaw) * parameter.OrbitDamping
	o.pitch += (o.targetPitch - o.pitch) * parameter.OrbitDamping

	cam.Pos.X = vmath.FromFloat(o.radius * math.Sin(o.yaw))
	cam.Pos.Z = vmath.FromFloat(o.radius * math.Cos(o.yaw))
}

// Pitch returns the current view tilt in radians
func (o *Orbit) Pitch() float64 {
	return o.pitch
}

// Yaw returns the current orbit angle in radians
func (o *Orbit) Yaw() float64 {
	return o.yaw
}

// Dragging reports whether a drag is in progress
func (o *Orbit) Dragging() bool {
	return o.dragging
}
