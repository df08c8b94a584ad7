package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for render-path calculations
// Avoids int64↔float64 conversion overhead in per-cell shading
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// RotateX rotates v about the X axis by angle radians
func RotateX(v Vec3F, angle float64) Vec3F {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3F{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// RotateY rotates v about the Y axis by angle radians
func RotateY(v Vec3F, angle float64) Vec3F {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3F{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// RotateZ rotates v about the Z axis by angle radians
func RotateZ(v Vec3F, angle float64) Vec3F {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3F{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// RotateXYZ applies X, then Y, then Z axis rotations
func RotateXYZ(v Vec3F, rot Vec3F) Vec3F {
	return RotateZ(RotateY(RotateX(v, rot.X), rot.Y), rot.Z)
}

// V3ToFloat converts Q32.32 Vec3 to Vec3F
func V3ToFloat(v Vec3) Vec3F {
	return Vec3F{
		X: ToFloat(v.X),
		Y: ToFloat(v.Y),
		Z: ToFloat(v.Z),
	}
}
