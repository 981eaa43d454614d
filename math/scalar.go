package math

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// LerpUnclamped interpolates between a and b, extrapolating outside [0, 1].
func LerpUnclamped(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Barycentric evaluates the point with barycentric coordinates (u, v) in the
// triangle spanned by v1, v2, v3.
func Barycentric(v1, v2, v3, u, v float32) float32 {
	return v1 + u*(v2-v1) + v*(v3-v1)
}

// CatmullRom evaluates the Catmull-Rom spline through p1 and p2 at t,
// shaped by the outer control points p0 and p3.
func CatmullRom(p0, p1, p2, p3, t float32) float32 {
	a := float64(t)
	a2 := a * a
	a3 := a2 * a
	return float32(0.5 * (2*float64(p1) +
		(float64(p2)-float64(p0))*a +
		(2*float64(p0)-5*float64(p1)+4*float64(p2)-float64(p3))*a2 +
		(3*float64(p1)-float64(p0)-3*float64(p2)+float64(p3))*a3))
}

// Hermite evaluates the cubic Hermite curve from p1 with tangent t1 to p2
// with tangent t2 at s.
func Hermite(p1, t1, p2, t2, s float32) float32 {
	sd := float64(s)
	s2 := sd * sd
	s3 := s2 * sd
	h1 := 2*s3 - 3*s2 + 1
	h2 := -2*s3 + 3*s2
	h3 := s3 - 2*s2 + sd
	h4 := s3 - s2
	return float32(float64(p1)*h1 + float64(p2)*h2 + float64(t1)*h3 + float64(t2)*h4)
}

// SmoothStep interpolates between a and b with smoothed ends; t is clamped
// to [0, 1].
func SmoothStep(a, b, t float32) float32 {
	t = Clamp(t, 0, 1)
	return LerpUnclamped(a, b, t*t*(3-2*t))
}
