package math

import "math"

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X, Y float32
}

var (
	Vec2Zero = Vec2{0, 0}
	Vec2One  = Vec2{1, 1}
)

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2) Mul(scalar float32) Vec2 {
	return Vec2{X: v.X * scalar, Y: v.Y * scalar}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSqr())))
}

func (v Vec2) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the same direction. The zero vector
// maps to itself.
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length > 0 {
		return v.Mul(1.0 / length)
	}
	return v
}

func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
	}
}

func (v Vec2) ToVec3(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}
