package math

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Vec3 is a 3-component float32 vector: a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3One   = Vec3{1, 1, 1}
	Vec3UnitX = Vec3{1, 0, 0}
	Vec3UnitY = Vec3{0, 1, 0}
	Vec3UnitZ = Vec3{0, 0, 1}

	// Direction aliases for a Y-up, +Z-forward world. North points to -Z.
	Vec3Up       = Vec3{0, 1, 0}
	Vec3Down     = Vec3{0, -1, 0}
	Vec3Right    = Vec3{1, 0, 0}
	Vec3Left     = Vec3{-1, 0, 0}
	Vec3Forward  = Vec3{0, 0, 1}
	Vec3Backward = Vec3{0, 0, -1}
	Vec3North    = Vec3{0, 0, -1}
	Vec3South    = Vec3{0, 0, 1}
	Vec3East     = Vec3{1, 0, 0}
	Vec3West     = Vec3{-1, 0, 0}
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec3Uniform sets all three components to v.
func NewVec3Uniform(v float32) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

func NewVec3FromVec2(v Vec2, z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) Mul(scalar float32) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Div multiplies by the reciprocal of scalar. A zero scalar yields IEEE
// infinities or NaNs, not an error.
func (v Vec3) Div(scalar float32) Vec3 {
	return v.Mul(1.0 / scalar)
}

// DivVec divides component-wise. Zero components in other yield IEEE
// infinities or NaNs, not an error.
func (v Vec3) DivVec(other Vec3) Vec3 {
	return Vec3{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// AddSize offsets a position by a Size extent.
func (v Vec3) AddSize(s Size) Vec3 {
	return Vec3{X: v.X + s.Width, Y: v.Y + s.Height, Z: v.Z + s.Depth}
}

func (v Vec3) SubSize(s Size) Vec3 {
	return Vec3{X: v.X - s.Width, Y: v.Y - s.Height, Z: v.Z - s.Depth}
}

// Dot accumulates in float64 before narrowing, to limit cancellation error.
func (v Vec3) Dot(other Vec3) float32 {
	return float32(float64(v.X)*float64(other.X) +
		float64(v.Y)*float64(other.Y) +
		float64(v.Z)*float64(other.Z))
}

// Cross is the right-handed cross product, each term accumulated in float64.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: float32(float64(v.Y)*float64(other.Z) - float64(v.Z)*float64(other.Y)),
		Y: float32(float64(v.Z)*float64(other.X) - float64(v.X)*float64(other.Z)),
		Z: float32(float64(v.X)*float64(other.Y) - float64(v.Y)*float64(other.X)),
	}
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSqr())))
}

func (v Vec3) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalized returns a unit vector in the same direction. The zero vector
// maps to itself.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length > 0 {
		return v.Mul(1.0 / length)
	}
	return v
}

// Normalize scales v to unit length in place. A zero-length vector is left
// unchanged.
func (v *Vec3) Normalize() {
	length := v.Length()
	if length > 0 {
		*v = v.Mul(1.0 / length)
	}
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) DistanceSqr(other Vec3) float32 {
	return v.Sub(other).LengthSqr()
}

// Lerp interpolates per component with t clamped to [0, 1].
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
		Z: Lerp(v.Z, other.Z, t),
	}
}

func (v Vec3) LerpUnclamped(other Vec3, t float32) Vec3 {
	return Vec3{
		X: LerpUnclamped(v.X, other.X, t),
		Y: LerpUnclamped(v.Y, other.Y, t),
		Z: LerpUnclamped(v.Z, other.Z, t),
	}
}

func (v Vec3) SmoothStep(other Vec3, t float32) Vec3 {
	return Vec3{
		X: SmoothStep(v.X, other.X, t),
		Y: SmoothStep(v.Y, other.Y, t),
		Z: SmoothStep(v.Z, other.Z, t),
	}
}

func Vec3Barycentric(v1, v2, v3 Vec3, u, w float32) Vec3 {
	return Vec3{
		X: Barycentric(v1.X, v2.X, v3.X, u, w),
		Y: Barycentric(v1.Y, v2.Y, v3.Y, u, w),
		Z: Barycentric(v1.Z, v2.Z, v3.Z, u, w),
	}
}

func Vec3CatmullRom(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	return Vec3{
		X: CatmullRom(p0.X, p1.X, p2.X, p3.X, t),
		Y: CatmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
		Z: CatmullRom(p0.Z, p1.Z, p2.Z, p3.Z, t),
	}
}

func Vec3Hermite(p1, t1, p2, t2 Vec3, s float32) Vec3 {
	return Vec3{
		X: Hermite(p1.X, t1.X, p2.X, t2.X, s),
		Y: Hermite(p1.Y, t1.Y, p2.Y, t2.Y, s),
		Z: Hermite(p1.Z, t1.Z, p2.Z, t2.Z, s),
	}
}

// Clamp limits each component to the matching range in min and max.
func (v Vec3) Clamp(min, max Vec3) Vec3 {
	return Vec3{
		X: Clamp(v.X, min.X, max.X),
		Y: Clamp(v.Y, min.Y, max.Y),
		Z: Clamp(v.Z, min.Z, max.Z),
	}
}

// ClampComponents limits each component's absolute value to max in place,
// preserving sign. Not a range clamp; see Clamp for that.
func (v *Vec3) ClampComponents(max float32) {
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
}

func (v Vec3) Floor() Vec3 {
	return Vec3{
		X: float32(math.Floor(float64(v.X))),
		Y: float32(math.Floor(float64(v.Y))),
		Z: float32(math.Floor(float64(v.Z))),
	}
}

func (v Vec3) Ceil() Vec3 {
	return Vec3{
		X: float32(math.Ceil(float64(v.X))),
		Y: float32(math.Ceil(float64(v.Y))),
		Z: float32(math.Ceil(float64(v.Z))),
	}
}

func (v Vec3) Round() Vec3 {
	return Vec3{
		X: float32(math.Round(float64(v.X))),
		Y: float32(math.Round(float64(v.Y))),
		Z: float32(math.Round(float64(v.Z))),
	}
}

// Min selects the smaller component at each position; not magnitude-based.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{
		X: Min(v.X, other.X),
		Y: Min(v.Y, other.Y),
		Z: Min(v.Z, other.Z),
	}
}

func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{
		X: Max(v.X, other.X),
		Y: Max(v.Y, other.Y),
		Z: Max(v.Z, other.Z),
	}
}

// Reflect mirrors v off a surface with unit normal. The normal is assumed
// already normalized; no normalization happens here.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	dot := v.X*normal.X + v.Y*normal.Y + v.Z*normal.Z
	return Vec3{
		X: v.X - 2*dot*normal.X,
		Y: v.Y - 2*dot*normal.Y,
		Z: v.Z - 2*dot*normal.Z,
	}
}

// Vec3OrthoNormalize normalizes normal and tangent in place, then replaces
// tangent with tangent x normal. The resulting tangent is orthogonal to
// normal but only unit length when the inputs were already orthogonal.
func Vec3OrthoNormalize(normal, tangent *Vec3) {
	normal.Normalize()
	tangent.Normalize()
	*tangent = tangent.Cross(*normal)
}

// Transform applies the affine part of a row-major matrix (the 3x3 linear
// block plus the translation row) to a position.
func (v Vec3) Transform(m Mat4) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2],
	}
}

// TransformNormal applies only the 3x3 linear part, so directions and
// normals are rotated and scaled but never translated.
func (v Vec3) TransformNormal(m Mat4) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// Rotate applies a unit quaternion via the double-cross formula, staying in
// single precision throughout.
func (v Vec3) Rotate(q Quaternion) Vec3 {
	cx := 2 * (q.Y*v.Z - q.Z*v.Y)
	cy := 2 * (q.Z*v.X - q.X*v.Z)
	cz := 2 * (q.X*v.Y - q.Y*v.X)
	return Vec3{
		X: v.X + cx*q.W + (q.Y*cz - q.Z*cy),
		Y: v.Y + cy*q.W + (q.Z*cx - q.X*cz),
		Z: v.Z + cz*q.W + (q.X*cy - q.Y*cx),
	}
}

var errNilSlice = errors.New("math: nil vector slice")

func checkBatchRange(srcLen, srcIndex, dstLen, dstIndex, count int) error {
	if srcIndex < 0 || dstIndex < 0 || count < 0 {
		return fmt.Errorf("math: negative batch range: srcIndex=%d dstIndex=%d count=%d",
			srcIndex, dstIndex, count)
	}
	if srcIndex+count > srcLen {
		return fmt.Errorf("math: source range %d+%d exceeds %d elements", srcIndex, count, srcLen)
	}
	if dstIndex+count > dstLen {
		return fmt.Errorf("math: destination range %d+%d exceeds %d elements", dstIndex, count, dstLen)
	}
	return nil
}

// Vec3TransformSlice transforms every element of src into dst. Each output
// element is identical to src[i].Transform(m).
func Vec3TransformSlice(m Mat4, src, dst []Vec3) error {
	return Vec3TransformRange(m, src, 0, dst, 0, len(src))
}

// Vec3TransformRange transforms count elements of src starting at srcIndex
// into dst starting at dstIndex.
func Vec3TransformRange(m Mat4, src []Vec3, srcIndex int, dst []Vec3, dstIndex, count int) error {
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

func Vec3TransformNormalSlice(m Mat4, src, dst []Vec3) error {
	return Vec3TransformNormalRange(m, src, 0, dst, 0, len(src))
}

func Vec3TransformNormalRange(m Mat4, src []Vec3, srcIndex int, dst []Vec3, dstIndex, count int) error {
	if src == nil || dst == nil {
		return errNilSlice
	}
	if err := checkBatchRange(len(src), srcIndex, len(dst), dstIndex, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dst[dstIndex+i] = src[srcIndex+i].TransformNormal(m)
	}
	return nil
}

// Component returns the component at index 0 (X), 1 (Y) or 2 (Z). Any other
// index panics.
func (v Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("math: vector component index out of range")
}

func (v *Vec3) SetComponent(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("math: vector component index out of range")
	}
}

// Vec3OnUnitSphere maps two uniform [0, 1] samples onto the unit sphere by
// inverse spherical-coordinate sampling: theta = u1*2pi, phi = acos(2*u2-1).
func Vec3OnUnitSphere(u1, u2 float32) Vec3 {
	theta := float64(u1) * 2 * math.Pi
	phi := math.Acos(2*float64(u2) - 1)
	sinPhi := math.Sin(phi)
	return Vec3{
		X: float32(sinPhi * math.Cos(theta)),
		Y: float32(sinPhi * math.Sin(theta)),
		Z: float32(math.Cos(phi)),
	}
}

// Vec3InsideUnitSphere draws two samples from rng and maps them with
// Vec3OnUnitSphere, so the point lands on the sphere's surface.
func Vec3InsideUnitSphere(rng *rand.Rand) Vec3 {
	return Vec3OnUnitSphere(rng.Float32(), rng.Float32())
}

// Hash combines the component bit patterns in X, Y, Z order with a fixed odd
// multiplier. Stable across runs.
func (v Vec3) Hash() uint32 {
	h := math.Float32bits(v.X)
	h = h*397 ^ math.Float32bits(v.Y)
	h = h*397 ^ math.Float32bits(v.Z)
	return h
}

func (v Vec3) ToVec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}
