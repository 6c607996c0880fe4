package common

import "math"

const (
	// Gravity is the downward acceleration applied to airborne actors, in units/s².
	Gravity = 9.8

	// TPS is the fixed simulation rate used by hosts that don't measure their own.
	TPS = 60
)

// Vec3 is a position or direction in world space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero = Vec3{}
	Up   = Vec3{Y: 1}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Forward returns the horizontal facing vector for a yaw angle. Yaw 0 faces -Z.
func Forward(yaw float64) Vec3 {
	return Vec3{X: -math.Sin(yaw), Z: -math.Cos(yaw)}
}

// Right returns the horizontal right-hand vector for a yaw angle.
func Right(yaw float64) Vec3 {
	return Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}
}

// YawTowards returns the yaw that makes Forward point from a to b.
func YawTowards(a, b Vec3) float64 {
	d := b.Sub(a)
	return math.Atan2(-d.X, -d.Z)
}
