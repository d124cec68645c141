package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if !r.ContainsF(29.9, 24.5) {
		t.Error("ContainsF should accept points just inside the far edge")
	}
	if r.ContainsF(9.99, 12) {
		t.Error("ContainsF should reject points left of the rect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF(1.5, 0, 1) should be 1")
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-1, 0.5, 2)

	if got := a.Add(b); got != V3(0, 2.5, 5) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V3(2, 1.5, 1) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale = %v", got)
	}
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
}

func TestEulerZeroIsIdentity(t *testing.T) {
	if Euler(Vec3{}) != Identity() {
		t.Errorf("Euler(0,0,0) = %+v, expected identity", Euler(Vec3{}))
	}

	q := Euler(V3(10, 20, 30))
	if q.Mul(Identity()) != q {
		t.Error("q * identity should equal q exactly")
	}
}

func TestEulerSingleAxis(t *testing.T) {
	tests := []struct {
		name  string
		euler Vec3
		in    Vec3
		want  Vec3
	}{
		{"z 90 turns x into y", V3(0, 0, 90), V3(1, 0, 0), V3(0, 1, 0)},
		{"y 90 turns z into x", V3(0, 90, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"x 90 turns y into z", V3(90, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"z 180 flips x", V3(0, 0, 180), V3(1, 0, 0), V3(-1, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Euler(tc.euler).Rotate(tc.in)
			if !got.ApproxEqual(tc.want, 1e-9) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestEulerOrderZXY(t *testing.T) {
	e := V3(30, 45, 60)
	manual := AxisAngle(V3(0, 1, 0), 45).Mul(AxisAngle(V3(1, 0, 0), 30)).Mul(AxisAngle(V3(0, 0, 1), 60))

	if !Euler(e).ApproxEqual(manual, eps) {
		t.Errorf("Euler(%v) does not apply Z, then X, then Y", e)
	}
}

func TestQuatMulOrder(t *testing.T) {
	a := Euler(V3(0, 0, 90))
	b := Euler(V3(0, 90, 0))

	// a*b applies b first: x -> (y 90) -> -z -> (z 90) -> -z
	got := a.Mul(b).Rotate(V3(1, 0, 0))
	if !got.ApproxEqual(V3(0, 0, -1), 1e-9) {
		t.Errorf("(a*b).Rotate(x) = %v, expected (0,0,-1)", got)
	}

	got = b.Mul(a).Rotate(V3(1, 0, 0))
	if !got.ApproxEqual(V3(0, 1, 0), 1e-9) {
		t.Errorf("(b*a).Rotate(x) = %v, expected (0,1,0)", got)
	}
}

func TestQuatConjugateInverts(t *testing.T) {
	q := Euler(V3(12, -70, 33))
	v := V3(0.3, -2, 5)

	back := q.Conjugate().Rotate(q.Rotate(v))
	if !back.ApproxEqual(v, 1e-9) {
		t.Errorf("conjugate round trip = %v, expected %v", back, v)
	}

	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.Abs(n-1) > eps {
		t.Errorf("Euler should produce a unit quaternion, norm = %v", n)
	}
}

func TestQuatApproxEqualSign(t *testing.T) {
	q := Euler(V3(10, 0, 0))
	neg := Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}

	if !q.ApproxEqual(neg, eps) {
		t.Error("q and -q describe the same rotation")
	}
	if q.ApproxEqual(Identity(), 1e-6) {
		t.Error("10 degree rotation should not equal identity")
	}
}
