package scene

import (
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/vmath"
)

// Torus is the centerpiece mesh; rotation in Q32.32 radians per axis,
// monotonically incremented every frame, never normalized
type Torus struct {
	Rot vmath.Vec3
}

// Moon spins on scroll events; position is fixed after construction
type Moon struct {
	Rot vmath.Vec3
	Pos vmath.Vec3F
}

// Star is one immutable point of the starfield
type Star struct {
	Pos vmath.Vec3F

	// phase staggers the twinkle cycle, derived at creation
	phase uint32
}

// Camera holds the viewpoint; Y is written by the scroll handler,
// X/Z by the orbit controls. Both run on the scheduler goroutine
type Camera struct {
	Pos vmath.Vec3
}

// Context is the scene graph: the fixed set of animatable entities plus the
// render buffer they draw into. Exactly one of each entity exists for the
// process lifetime. All mutation happens on the scheduler goroutine; the
// context is passed by pointer to both the frame step and the scroll handler
type Context struct {
	Torus *Torus
	Moon  *Moon
	Stars []Star
	Cam   *Camera
	Orbit *Orbit

	buf     *render.Buffer
	surface render.Surface

	// scroll is the virtual distance from the top of the "page" in Q32.32,
	// accumulated from wheel events, clamped at 0 (the top), negative below
	scroll int64

	frame uint64
	seed  uint32
}

// New builds the object registry once and wires it to the output surface
func New(width, height int, surface render.Surface, cfg config.Settings) *Context {
	seed := cfg.Seed
	if seed == 0 {
		seed = 0x5eedca11
	}

	c := &Context{
		Torus: &Torus{},
		Moon: &Moon{
			Pos: vmath.Vec3F{
				X: parameter.MoonOffsetX,
				Y: parameter.MoonOffsetY,
				Z: parameter.MoonOffsetZ,
			},
		},
		Cam: &Camera{
			Pos: vmath.Vec3{Z: vmath.FromFloat(parameter.CameraOrbitRadius)},
		},
		Orbit:   NewOrbit(),
		buf:     render.NewBuffer(width, height),
		surface: surface,
		seed:    uint32(seed),
	}

	c.Stars = scatterStars(cfg.Stars, seed)
	return c
}

// scatterStars places the fixed starfield in a cube around the origin
func scatterStars(count int, seed uint64) []Star {
	rng := vmath.NewFastRand(seed)
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		p := vmath.Vec3F{
			X: (rng.Float()*2 - 1) * parameter.StarSpread,
			Y: (rng.Float()*2 - 1) * parameter.StarSpread,
			Z: (rng.Float()*2 - 1) * parameter.StarSpread,
		}
		stars = append(stars, Star{
			Pos:   p,
			phase: vmath.Hash32(uint32(i)*0x9e3779b1 + uint32(seed)),
		})
	}
	return stars
}

// Resize adjusts the render buffer to new terminal dimensions
func (c *Context) Resize(width, height int) {
	c.buf.Resize(width, height)
}

// Buffer exposes the render target for inspection
func (c *Context) Buffer() *render.Buffer {
	return c.buf
}

// Frame returns the number of completed update steps
func (c *Context) Frame() uint64 {
	return c.frame
}

// ScrollOffset returns the current virtual distance from the top in Q32.32
func (c *Context) ScrollOffset() int64 {
	return c.scroll
}
