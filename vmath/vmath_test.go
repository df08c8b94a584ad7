package vmath

import (
	"math"
	"testing"
)

func TestFloatRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, -0.25, 3.14159, 100.0, -42.125}
	for _, v := range values {
		got := ToFloat(FromFloat(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("roundtrip %v: got %v", v, got)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{2, 3, 6},
		{-2, 3, -6},
		{0.5, 0.5, 0.25},
		{-0.1, -0.1, 0.01},
		{0, 5, 0},
	}
	for _, tt := range tests {
		got := ToFloat(Mul(FromFloat(tt.a), FromFloat(tt.b)))
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Mul(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{6, 3, 2},
		{-6, 3, -2},
		{1, 4, 0.25},
		{100, 8, 12.5},
	}
	for _, tt := range tests {
		got := ToFloat(Div(FromFloat(tt.a), FromFloat(tt.b)))
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Div(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivByZero(t *testing.T) {
	if Div(FromFloat(1), 0) != 0 {
		t.Error("division by zero should return 0")
	}
}

func TestSqrt(t *testing.T) {
	values := []float64{0.25, 1, 2, 4, 9, 100, 400}
	for _, v := range values {
		got := ToFloat(Sqrt(FromFloat(v)))
		want := math.Sqrt(v)
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("Sqrt(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestSinCosLUT(t *testing.T) {
	// Angle 0..Scale maps to 0..2pi
	for i := 0; i < 16; i++ {
		angle := int64(i) * (Scale / 16)
		rad := 2 * math.Pi * float64(i) / 16
		if got, want := ToFloat(Sin(angle)), math.Sin(rad); math.Abs(got-want) > 0.01 {
			t.Errorf("Sin(%d/16 turn) = %v, want %v", i, got, want)
		}
		if got, want := ToFloat(Cos(angle)), math.Cos(rad); math.Abs(got-want) > 0.01 {
			t.Errorf("Cos(%d/16 turn) = %v, want %v", i, got, want)
		}
	}
}

func TestV3AddExact(t *testing.T) {
	// Repeated fixed-point adds accumulate without drift
	delta := Vec3{X: FromFloat(0.01), Y: FromFloat(0.05), Z: FromFloat(0.075)}
	var v Vec3
	for i := 0; i < 1000; i++ {
		v = V3Add(v, delta)
	}
	if v.X != 1000*delta.X || v.Y != 1000*delta.Y || v.Z != 1000*delta.Z {
		t.Errorf("accumulated %+v, want exactly 1000x %+v", v, delta)
	}
}

func TestVec3FNormalize(t *testing.T) {
	v := V3FNormalize(Vec3F{X: 3, Y: 4, Z: 0})
	if math.Abs(V3FMag(v)-1) > 1e-12 {
		t.Errorf("normalized magnitude = %v", V3FMag(v))
	}
	if zero := V3FNormalize(Vec3F{}); zero != (Vec3F{}) {
		t.Errorf("zero vector normalize = %v", zero)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	v := RotateY(Vec3F{X: 1}, math.Pi/2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Z+1) > 1e-12 {
		t.Errorf("quarter turn about Y: %+v", v)
	}
}

func TestRotateXYZInverse(t *testing.T) {
	rot := Vec3F{X: 0.3, Y: -0.7, Z: 1.1}
	p := Vec3F{X: 2, Y: -3, Z: 5}
	q := RotateXYZ(p, rot)
	// Undo in reverse axis order with negated angles
	back := RotateX(RotateY(RotateZ(q, -rot.Z), -rot.Y), -rot.X)
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 || math.Abs(back.Z-p.Z) > 1e-9 {
		t.Errorf("inverse rotation: got %+v, want %+v", back, p)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed diverged")
		}
	}
}

func TestFastRandFloatRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %v out of [0,1)", f)
		}
	}
}

func TestHash32Distribution(t *testing.T) {
	// Sequential inputs must not collide over a small range
	seen := make(map[uint32]bool)
	for i := uint32(0); i < 4096; i++ {
		h := Hash32(i)
		if seen[h] {
			t.Fatalf("collision at input %d", i)
		}
		seen[h] = true
	}
}

func TestHash3AxisDecorrelation(t *testing.T) {
	if Hash3(1, 1, 0, 0) == Hash3(1, 0, 1, 0) {
		t.Error("x and y axes correlate")
	}
	if Hash3(1, 0, 1, 0) == Hash3(1, 0, 0, 1) {
		t.Error("y and z axes correlate")
	}
}

func TestValueNoise3Range(t *testing.T) {
	for i := 0; i < 500; i++ {
		f := float64(i) * 0.173
		n := ValueNoise3(9, f, f*0.7, f*1.3)
		if n < 0 || n >= 1 {
			t.Fatalf("noise out of range: %v", n)
		}
	}
}

func TestValueNoise3Continuity(t *testing.T) {
	// Neighboring samples must not jump
	prev := ValueNoise3(9, 0, 0, 0)
	for i := 1; i <= 200; i++ {
		x := float64(i) * 0.01
		n := ValueNoise3(9, x, 0, 0)
		if math.Abs(n-prev) > 0.1 {
			t.Fatalf("discontinuity at %v: %v -> %v", x, prev, n)
		}
		prev = n
	}
}
