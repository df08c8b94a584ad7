package vmath

// Vec3 is a 3D vector in Q32.32, used for entity state so fixed increments
// accumulate exactly
type Vec3 struct {
	X, Y, Z int64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}
