package math

import "math"

// Vec4 is a 4-component float32 vector, usually a homogeneous 3D point or
// direction.
type Vec4 struct {
	X, Y, Z, W float32
}

var (
	Vec4Zero  = Vec4{0, 0, 0, 0}
	Vec4One   = Vec4{1, 1, 1, 1}
	Vec4UnitX = Vec4{1, 0, 0, 0}
	Vec4UnitY = Vec4{0, 1, 0, 0}
	Vec4UnitZ = Vec4{0, 0, 1, 0}
	Vec4UnitW = Vec4{0, 0, 0, 1}
)

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewVec4Uniform sets all four components to v.
func NewVec4Uniform(v float32) Vec4 {
	return Vec4{X: v, Y: v, Z: v, W: v}
}

func NewVec4FromVec2(v Vec2, z, w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: z, W: w}
}

func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

func (v Vec4) Mul(scalar float32) Vec4 {
	return Vec4{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar, W: v.W * scalar}
}

func (v Vec4) MulVec(other Vec4) Vec4 {
	return Vec4{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z, W: v.W * other.W}
}

// Div multiplies by the reciprocal of scalar. A zero scalar yields IEEE
// infinities or NaNs, not an error.
func (v Vec4) Div(scalar float32) Vec4 {
	return v.Mul(1.0 / scalar)
}

// DivVec divides component-wise. Zero components in other yield IEEE
// infinities or NaNs, not an error.
func (v Vec4) DivVec(other Vec4) Vec4 {
	return Vec4{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z, W: v.W / other.W}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot accumulates in float64 before narrowing, to limit cancellation error.
func (v Vec4) Dot(other Vec4) float32 {
	return float32(float64(v.X)*float64(other.X) +
		float64(v.Y)*float64(other.Y) +
		float64(v.Z)*float64(other.Z) +
		float64(v.W)*float64(other.W))
}

func (v Vec4) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSqr())))
}

func (v Vec4) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalized divides by the length with no zero guard: a zero vector
// produces NaN components. This differs from Vec3.Normalized on purpose.
func (v Vec4) Normalized() Vec4 {
	return v.Mul(1.0 / v.Length())
}

// Normalize scales v to unit length in place, with the same unguarded
// division as Normalized.
func (v *Vec4) Normalize() {
	*v = v.Mul(1.0 / v.Length())
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

func (v Vec4) DistanceSqr(other Vec4) float32 {
	return v.Sub(other).LengthSqr()
}

// Lerp interpolates per component with t clamped to [0, 1].
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return Vec4{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
		Z: Lerp(v.Z, other.Z, t),
		W: Lerp(v.W, other.W, t),
	}
}

func (v Vec4) LerpUnclamped(other Vec4, t float32) Vec4 {
	return Vec4{
		X: LerpUnclamped(v.X, other.X, t),
		Y: LerpUnclamped(v.Y, other.Y, t),
		Z: LerpUnclamped(v.Z, other.Z, t),
		W: LerpUnclamped(v.W, other.W, t),
	}
}

func (v Vec4) SmoothStep(other Vec4, t float32) Vec4 {
	return Vec4{
		X: SmoothStep(v.X, other.X, t),
		Y: SmoothStep(v.Y, other.Y, t),
		Z: SmoothStep(v.Z, other.Z, t),
		W: SmoothStep(v.W, other.W, t),
	}
}

func Vec4Barycentric(v1, v2, v3 Vec4, u, w float32) Vec4 {
	return Vec4{
		X: Barycentric(v1.X, v2.X, v3.X, u, w),
		Y: Barycentric(v1.Y, v2.Y, v3.Y, u, w),
		Z: Barycentric(v1.Z, v2.Z, v3.Z, u, w),
		W: Barycentric(v1.W, v2.W, v3.W, u, w),
	}
}

func Vec4CatmullRom(p0, p1, p2, p3 Vec4, t float32) Vec4 {
	return Vec4{
		X: CatmullRom(p0.X, p1.X, p2.X, p3.X, t),
		Y: CatmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
		Z: CatmullRom(p0.Z, p1.Z, p2.Z, p3.Z, t),
		W: CatmullRom(p0.W, p1.W, p2.W, p3.W, t),
	}
}

func Vec4Hermite(p1, t1, p2, t2 Vec4, s float32) Vec4 {
	return Vec4{
		X: Hermite(p1.X, t1.X, p2.X, t2.X, s),
		Y: Hermite(p1.Y, t1.Y, p2.Y, t2.Y, s),
		Z: Hermite(p1.Z, t1.Z, p2.Z, t2.Z, s),
		W: Hermite(p1.W, t1.W, p2.W, t2.W, s),
	}
}

// Clamp limits each component to the matching range in min and max.
func (v Vec4) Clamp(min, max Vec4) Vec4 {
	return Vec4{
		X: Clamp(v.X, min.X, max.X),
		Y: Clamp(v.Y, min.Y, max.Y),
		Z: Clamp(v.Z, min.Z, max.Z),
		W: Clamp(v.W, min.W, max.W),
	}
}

// ClampComponents limits each component's absolute value to max in place,
// preserving sign.
func (v *Vec4) ClampComponents(max float32) {
	if v.X > max {
		v.X = max
	} else if v.X < -max {
		v.X = -max
	}
	if v.Y > max {
		v.Y = max
	} else if v.Y < -max {
		v.Y = -max
	}
	if v.Z > max {
		v.Z = max
	} else if v.Z < -max {
		v.Z = -max
	}
	if v.W > max {
		v.W = max
	} else if v.W < -max {
		v.W = -max
	}
}

func (v Vec4) Floor() Vec4 {
	return Vec4{
		X: float32(math.Floor(float64(v.X))),
		Y: float32(math.Floor(float64(v.Y))),
		Z: float32(math.Floor(float64(v.Z))),
		W: float32(math.Floor(float64(v.W))),
	}
}

func (v Vec4) Ceil() Vec4 {
	return Vec4{
		X: float32(math.Ceil(float64(v.X))),
		Y: float32(math.Ceil(float64(v.Y))),
		Z: float32(math.Ceil(float64(v.Z))),
		W: float32(math.Ceil(float64(v.W))),
	}
}

func (v Vec4) Round() Vec4 {
	return Vec4{
		X: float32(math.Round(float64(v.X))),
		Y: float32(math.Round(float64(v.Y))),
		Z: float32(math.Round(float64(v.Z))),
		W: float32(math.Round(float64(v.W))),
	}
}

func (v Vec4) Min(other Vec4) Vec4 {
	return Vec4{
		X: Min(v.X, other.X),
		Y: Min(v.Y, other.Y),
		Z: Min(v.Z, other.Z),
		W: Min(v.W, other.W),
	}
}

func (v Vec4) Max(other Vec4) Vec4 {
	return Vec4{
		X: Max(v.X, other.X),
		Y: Max(v.Y, other.Y),
		Z: Max(v.Z, other.Z),
		W: Max(v.W, other.W),
	}
}

// Transform multiplies the row vector v by the full 4x4 row-major matrix.
func (v Vec4) Transform(m Mat4) Vec4 {
	return Vec4{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// Vec4TransformVec2 promotes a 2D point to homogeneous coordinates
// (z = 0, w = 1) and applies the full matrix.
func Vec4TransformVec2(v Vec2, m Mat4) Vec4 {
	return NewVec4FromVec2(v, 0, 1).Transform(m)
}

// Vec4TransformVec3 promotes a 3D point to homogeneous coordinates (w = 1)
// and applies the full matrix.
func Vec4TransformVec3(v Vec3, m Mat4) Vec4 {
	return v.ToVec4(1).Transform(m)
}

// Vec4TransformSlice transforms every element of src into dst. Each output
// element is identical to src[i].Transform(m).
func Vec4TransformSlice(m Mat4, src, dst []Vec4) error {
	return Vec4TransformRange(m, src, 0, dst, 0, len(src))
}

// Vec4TransformRange transforms count elements of src starting at srcIndex
// into dst starting at dstIndex.
func Vec4TransformRange(m Mat4, src []Vec4, srcIndex int, dst []Vec4, dstIndex, count int) error {
	if src == nil || dst == nil {
		return errNilSlice
	}
	if err := checkBatchRange(len(src), srcIndex, len(dst), dstIndex, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dst[dstIndex+i] = src[srcIndex+i].Transform(m)
	}
	return nil
}

// Hash combines the component bit patterns in W, X, Y, Z order with a fixed
// odd multiplier. Stable across runs.
func (v Vec4) Hash() uint32 {
	h := math.Float32bits(v.W)
	h = h*397 ^ math.Float32bits(v.X)
	h = h*397 ^ math.Float32bits(v.Y)
	h = h*397 ^ math.Float32bits(v.Z)
	return h
}

func (v Vec4) ToVec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// ToVec3DivW projects a homogeneous point back to 3D by the perspective
// divide. A zero W skips the divide.
func (v Vec4) ToVec3DivW() Vec3 {
	if v.W != 0 {
		return Vec3{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
	}
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
