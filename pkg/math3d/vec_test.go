package math3d

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func approxVec3(a, b Vec3, tol float32) bool {
	return approx(a.X, b.X, tol) && approx(a.Y, b.Y, tol) && approx(a.Z, b.Z, tol)
}

// closeVec3 compares with a tolerance relative to the operands' magnitude,
// leaving room for fused multiply-add on some targets.
func closeVec3(a, b Vec3) bool {
	return approxVec3(a, b, 1e-6*math32.Max(1, math32.Max(a.Len(), b.Len())))
}

var vecPairs = []struct {
	name string
	a, b Vec3
}{
	{"axes", V3(1, 0, 0), V3(0, 1, 0)},
	{"integers", V3(1, 2, 3), V3(4, 5, 6)},
	{"mixed signs", V3(-2.5, 0.75, 3), V3(1.25, -4, 0.5)},
	{"large", V3(1e3, -2e2, 5e1), V3(3, 7e2, -1e3)},
}

func TestCrossAxes(t *testing.T) {
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("x × y = %v, want z", got)
	}
	if got := V3(0, 1, 0).Cross(V3(0, 0, 1)); got != V3(1, 0, 0) {
		t.Errorf("y × z = %v, want x", got)
	}
	if got := V3(0, 0, 1).Cross(V3(1, 0, 0)); got != V3(0, 1, 0) {
		t.Errorf("z × x = %v, want y", got)
	}
}

func TestCrossAntiCommutative(t *testing.T) {
	for _, tc := range vecPairs {
		t.Run(tc.name, func(t *testing.T) {
			ab := tc.a.Cross(tc.b)
			ba := tc.b.Cross(tc.a)
			if !closeVec3(ab, ba.Neg()) {
				t.Errorf("a×b = %v, -(b×a) = %v", ab, ba.Neg())
			}
		})
	}
}

func TestCrossMatchesExpandedForm(t *testing.T) {
	for _, tc := range vecPairs {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a, tc.b
			want := Vec3{
				a.Y*b.Z - a.Z*b.Y,
				a.Z*b.X - a.X*b.Z,
				a.X*b.Y - a.Y*b.X,
			}
			if got := a.Cross(b); !closeVec3(got, want) {
				t.Errorf("Cross = %v, want %v", got, want)
			}
		})
	}
}

func TestCrossOrthogonal(t *testing.T) {
	for _, tc := range vecPairs {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.a.Cross(tc.b)
			scale := tc.a.Len() * tc.b.Len() * c.Len()
			if !approx(c.Dot(tc.a)/scale, 0, 1e-5) || !approx(c.Dot(tc.b)/scale, 0, 1e-5) {
				t.Errorf("cross product %v not orthogonal to inputs", c)
			}
		})
	}
}

func TestDotSymmetric(t *testing.T) {
	for _, tc := range vecPairs {
		t.Run(tc.name, func(t *testing.T) {
			ab, ba := tc.a.Dot(tc.b), tc.b.Dot(tc.a)
			if !approx(ab, ba, 1e-6*math32.Max(1, math32.Abs(ab))) {
				t.Errorf("a·b = %v, b·a = %v", ab, ba)
			}
		})
	}
}

func TestWideOpsAreElementWise(t *testing.T) {
	a, b := V3(2, 3, 4), V3(5, 6, 8)

	if got := a.WideMul(b); got != V3(10, 18, 32) {
		t.Errorf("WideMul = %v", got)
	}
	if got := b.WideDiv(a); got != V3(2.5, 2, 2) {
		t.Errorf("WideDiv = %v", got)
	}
	if got := a.Dot(b); got != 10+18+32 {
		t.Errorf("Dot = %v", got)
	}

	v4 := V4(1, 2, 3, 4).WideMul(V4(2, 2, 2, 2))
	if v4 != V4(2, 4, 6, 8) {
		t.Errorf("Vec4 WideMul = %v", v4)
	}
	v2 := V2(3, 8).WideDiv(V2(3, 2))
	if v2 != V2(1, 4) {
		t.Errorf("Vec2 WideDiv = %v", v2)
	}
}

func TestNormalizeZeroIsNotFinite(t *testing.T) {
	if Zero3().Normalize().IsFinite() {
		t.Error("normalizing the zero vector should produce non-finite lanes")
	}
}

func TestNormalizeLength(t *testing.T) {
	for _, v := range []Vec3{V3(1, 2, 3), V3(-7, 0.5, 2), V3(1e-3, 0, 0), V3(300, 400, 0)} {
		u := v.Unit()
		if !approx(u.Vec().LenSq(), 1, 4*Epsilon) {
			t.Errorf("|unit(%v)|² = %v", v, u.Vec().LenSq())
		}
	}
}

func TestAsUnit(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		ok   bool
	}{
		{"x axis", V3(1, 0, 0), true},
		{"negative z", V3(0, 0, -1), true},
		{"3-4-5", V3(0.6, 0.8, 0), true},
		{"zero", Zero3(), false},
		{"diagonal", V3(1, 1, 0), false},
		{"slightly long", V3(1+4*Epsilon, 0, 0), false},
		{"half", V3(0.5, 0, 0), false},
		{"nan", V3(math32.NaN(), 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, ok := AsUnit(tc.v)
			if ok != tc.ok {
				t.Fatalf("AsUnit(%v) ok = %v, want %v", tc.v, ok, tc.ok)
			}
			if ok && u.Vec() != tc.v {
				t.Errorf("AsUnit changed the vector: %v", u.Vec())
			}
		})
	}
}

func TestReflect(t *testing.T) {
	t.Run("head on", func(t *testing.T) {
		d := UnitZ
		n := UnitZ.Neg()
		if got := d.Reflect(n); got.Vec() != V3(0, 0, -1) {
			t.Errorf("Reflect = %v, want (0, 0, -1)", got.Vec())
		}
	})

	t.Run("45 degrees", func(t *testing.T) {
		d := V3(1, -1, 0).Unit()
		got := d.Reflect(UnitY).Vec()
		want := V3(1, 1, 0).Normalize()
		if !approxVec3(got, want, 1e-6) {
			t.Errorf("Reflect = %v, want %v", got, want)
		}
	})
}

func TestClampHandlesNaN(t *testing.T) {
	got := V3(math32.NaN(), 2, -1).Clamp(0, 1)
	if got != V3(0, 1, 0) {
		t.Errorf("Clamp = %v, want (0, 1, 0)", got)
	}
}

func TestVec4Conversions(t *testing.T) {
	v := V3(1, 2, 3)
	if got := v.Vec4(7).Vec3(); got != v {
		t.Errorf("round trip through Vec4 = %v", got)
	}
	if got := V4(2, 4, 6, 2).PerspectiveDivide(); got != V3(1, 2, 3) {
		t.Errorf("PerspectiveDivide = %v", got)
	}
}

func TestVec2Distance(t *testing.T) {
	if got := V2(1, 1).Distance(V2(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
