package core

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in world space.
// Screen rendering maps X to columns and Y to rows; Z is depth.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// ApproxEqual compares component-wise within eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// Quat is a unit quaternion describing an orientation.
// The zero value is not a valid rotation; use Identity.
type Quat struct {
	X, Y, Z, W float64
}

// Identity returns the rotation that leaves vectors unchanged.
func Identity() Quat {
	return Quat{W: 1}
}

// AxisAngle builds a rotation of deg degrees around a unit axis.
func AxisAngle(axis Vec3, deg float64) Quat {
	half := deg * math.Pi / 360
	s := math.Sin(half)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: math.Cos(half)}
}

// Euler builds a rotation from angles in degrees around X, Y and Z.
// Rotations are applied Z first, then X, then Y, matching the common
// game-engine convention for Euler angles.
func Euler(e Vec3) Quat {
	if e.IsZero() {
		return Identity()
	}
	qx := AxisAngle(Vec3{X: 1}, e.X)
	qy := AxisAngle(Vec3{Y: 1}, e.Y)
	qz := AxisAngle(Vec3{Z: 1}, e.Z)
	return qy.Mul(qx).Mul(qz)
}

// Mul returns the Hamilton product q*r: applying r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// Forward returns the rotated +X axis, the direction entities travel in.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Vec3{X: 1})
}

// ApproxEqual reports whether q and r describe the same orientation within eps.
// q and -q are the same rotation.
func (q Quat) ApproxEqual(r Quat, eps float64) bool {
	dot := q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
	return math.Abs(math.Abs(dot)-1) <= eps
}
