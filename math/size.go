package math

// Size is a width/height/depth extent used to offset positions.
type Size struct {
	Width, Height, Depth float32
}

func NewSize(width, height, depth float32) Size {
	return Size{Width: width, Height: height, Depth: depth}
}

func (s Size) ToVec3() Vec3 {
	return Vec3{X: s.Width, Y: s.Height, Z: s.Depth}
}
