package math

import (
	"math"
	"testing"
)

func TestVec2Operations(t *testing.T) {
	v1 := NewVec2(1, 2)
	v2 := NewVec2(3, 4)

	if got := v1.Add(v2); got != NewVec2(4, 6) {
		t.Errorf("Add: expected (4 6), got %v", got)
	}
	if got := v2.Sub(v1); got != NewVec2(2, 2) {
		t.Errorf("Sub: expected (2 2), got %v", got)
	}
	if got := v1.Mul(2); got != NewVec2(2, 4) {
		t.Errorf("Mul: expected (2 4), got %v", got)
	}
	if dot := v1.Dot(v2); dot != 11 {
		t.Errorf("Dot: expected 11, got %v", dot)
	}
	if l := NewVec2(3, 4).Length(); l != 5 {
		t.Errorf("Length: expected 5, got %v", l)
	}
	if l := NewVec2(3, 4).LengthSqr(); l != 25 {
		t.Errorf("LengthSqr: expected 25, got %v", l)
	}
}

func TestVec2Normalized(t *testing.T) {
	if got := NewVec2(0, 3).Normalized(); got != NewVec2(0, 1) {
		t.Errorf("Normalized: expected (0 1), got %v", got)
	}
	if got := Vec2Zero.Normalized(); got != Vec2Zero {
		t.Errorf("Normalized zero: expected zero, got %v", got)
	}
	length := NewVec2(1, 2).Normalized().Length()
	if math.Abs(float64(length-1)) > tolerance {
		t.Errorf("Normalized: expected length 1, got %v", length)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2Zero
	b := NewVec2(10, 0)
	if got := a.Lerp(b, 0.5); got != NewVec2(5, 0) {
		t.Errorf("Lerp: expected (5 0), got %v", got)
	}
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp should clamp t, got %v", got)
	}
}

func TestVec2Conversions(t *testing.T) {
	if got := NewVec2(1, 2).ToVec3(3); got != NewVec3(1, 2, 3) {
		t.Errorf("ToVec3: expected (1 2 3), got %v", got)
	}
}
