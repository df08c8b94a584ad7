package scene

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

func TestDragSetsYawTarget(t *testing.T) {
	o := NewOrbit()

	// First press arms the drag without applying a delta
	o.HandleMouse(10, 10, tcell.Button1)
	if o.targetYaw != 0 {
		t.Errorf("press alone moved target: %v", o.targetYaw)
	}

	o.HandleMouse(20, 10, tcell.Button1)
	want := 10 * parameter.OrbitYawPerCell
	if math.Abs(o.targetYaw-want) > 1e-12 {
		t.Errorf("targetYaw = %v, want %v", o.targetYaw, want)
	}
}

func TestReleaseEndsDrag(t *testing.T) {
	o := NewOrbit()
	o.HandleMouse(10, 10, tcell.Button1)
	o.HandleMouse(20, 10, tcell.Button1)
	o.HandleMouse(20, 10, tcell.ButtonNone)
	if o.Dragging() {
		t.Error("still dragging after release")
	}

	// A new press far away must not apply the travel as a delta
	before := o.targetYaw
	o.HandleMouse(60, 10, tcell.Button1)
	if o.targetYaw != before {
		t.Errorf("re-press jumped target from %v to %v", before, o.targetYaw)
	}
}

func TestPitchClamped(t *testing.T) {
	o := NewOrbit()
	o.HandleMouse(0, 0, tcell.Button1)
	o.HandleMouse(0, 10000, tcell.Button1)
	if o.targetPitch > parameter.OrbitPitchLimit {
		t.Errorf("pitch target %v over limit", o.targetPitch)
	}
	o.HandleMouse(0, -20000, tcell.Button1)
	if o.targetPitch < -parameter.OrbitPitchLimit {
		t.Errorf("pitch target %v under limit", o.targetPitch)
	}
}

func TestUpdateConvergesToTarget(t *testing.T) {
	o := NewOrbit()
	cam := &Camera{}
	o.targetYaw = 1.5
	o.targetPitch = 0.4

	for i := 0; i < 300; i++ {
		o.Update(cam)
	}

	if math.Abs(o.yaw-1.5) > 1e-6 {
		t.Errorf("yaw = %v, want 1.5", o.yaw)
	}
	if math.Abs(o.Pitch()-0.4) > 1e-6 {
		t.Errorf("pitch = %v, want 0.4", o.Pitch())
	}
}

func TestUpdateKeepsCameraOnOrbitRadius(t *testing.T) {
	o := NewOrbit()
	cam := &Camera{}
	o.targetYaw = 2.2

	for i := 0; i < 50; i++ {
		o.Update(cam)
		x := vmath.ToFloat(cam.Pos.X)
		z := vmath.ToFloat(cam.Pos.Z)
		r := math.Sqrt(x*x + z*z)
		if math.Abs(r-parameter.CameraOrbitRadius) > 1e-6 {
			t.Fatalf("camera left orbit: radius %v", r)
		}
	}
}

func TestUpdateLeavesCameraYAlone(t *testing.T) {
	o := NewOrbit()
	cam := &Camera{Pos: vmath.Vec3{Y: vmath.FromFloat(0.05)}}
	o.targetYaw = 1.0
	for i := 0; i < 20; i++ {
		o.Update(cam)
	}
	if cam.Pos.Y != vmath.FromFloat(0.05) {
		t.Errorf("orbit wrote camera Y: %d", cam.Pos.Y)
	}
}

func TestDampingIsMonotonicApproach(t *testing.T) {
	o := NewOrbit()
	cam := &Camera{}
	o.targetYaw = 1.0

	prev := 0.0
	for i := 0; i < 40; i++ {
		o.Update(cam)
		if o.yaw < prev || o.yaw > 1.0+1e-12 {
			t.Fatalf("yaw not a monotonic approach: %v after %v", o.yaw, prev)
		}
		prev = o.yaw
	}
}
