package dual

import (
	"errors"
	"math"
	"testing"
)

func mustDual2(t *testing.T, real float64, names []string, grad, hess []float64) Dual2 {
	t.Helper()
	d, err := New2WithGrad(real, names, grad, hess)
	if err != nil {
		t.Fatalf("New2WithGrad: %v", err)
	}
	return d
}

func assertHess(t *testing.T, want []float64, d Dual2, names []string, msg string) {
	t.Helper()
	k := len(names)
	h := d.Grad2(names)
	r, c := h.Dims()
	if r != k || c != k {
		t.Fatalf("%s: Grad2 dims = %dx%d, want %dx%d", msg, r, c, k, k)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			// Grad2 doubles the stored representation.
			if math.Abs(h.At(i, j)-2*want[i*k+j]) > 1e-12 {
				t.Errorf("%s[%d,%d]: got %v, want %v", msg, i, j, h.At(i, j), 2*want[i*k+j])
			}
		}
	}
}

func TestNew2Defaults(t *testing.T) {
	d := New2(2.0, []string{"a", "a", "b"})
	assertFloat(t, 2.0, d.Real(), "Real")
	assertNames(t, []string{"a", "b"}, d.Vars().Names(), "Vars")
	assertFloats(t, []float64{1, 1}, d.Grad([]string{"a", "b"}), "Grad")
	assertHess(t, []float64{0, 0, 0, 0}, d, []string{"a", "b"}, "Hess")
}

func TestNew2InvalidLengths(t *testing.T) {
	if _, err := New2WithGrad(1, []string{"a", "b"}, []float64{1}, nil); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short gradient error = %v, want ErrInvalidLength", err)
	}
	if _, err := New2WithGrad(1, []string{"a", "b"}, nil, []float64{1, 2, 3}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short Hessian error = %v, want ErrInvalidLength", err)
	}
}

func TestMul2(t *testing.T) {
	d1 := mustDual2(t, 1.0, []string{"v0", "v1"}, []float64{1, 2}, nil)
	d2 := mustDual2(t, 2.0, []string{"v0", "v2"}, []float64{0, 3}, nil)
	want := mustDual2(t, 2.0,
		[]string{"v0", "v1", "v2"},
		[]float64{2, 4, 3},
		[]float64{
			0, 0, 1.5,
			0, 0, 3,
			1.5, 3, 0,
		})
	if got := d1.Mul(d2); !got.Equal(want) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestDiv2(t *testing.T) {
	d1 := mustDual2(t, 1.0, []string{"v0", "v1"}, []float64{1, 2}, nil)
	d2 := mustDual2(t, 2.0, []string{"v0", "v2"}, []float64{0, 3}, nil)
	want := mustDual2(t, 0.5,
		[]string{"v0", "v1", "v2"},
		[]float64{0.5, 1.0, -0.75},
		[]float64{
			0, 0, -0.375,
			0, 0, -0.75,
			-0.375, -0.75, 1.125,
		})
	if got := d1.Div(d2); !got.Equal(want) {
		t.Errorf("Div = %v, want %v", got, want)
	}
}

func TestScalar2Arithmetic(t *testing.T) {
	d := mustDual2(t, 1.0, []string{"v0", "v1"}, []float64{1, 2}, nil)

	m := d.MulFloat(10).MulFloat(2)
	assertFloat(t, 20.0, m.Real(), "MulFloat real")
	assertFloats(t, []float64{20, 40}, m.Grad([]string{"v0", "v1"}), "MulFloat grad")

	q := d.DivFloat(2)
	assertFloat(t, 0.5, q.Real(), "DivFloat real")
	assertFloats(t, []float64{0.5, 1}, q.Grad([]string{"v0", "v1"}), "DivFloat grad")

	a := d.AddFloat(3)
	if !a.SharesVars(d) {
		t.Error("scalar add should keep the registry")
	}
	assertFloat(t, 4.0, a.Real(), "AddFloat real")
}

func TestInverseIdentity(t *testing.T) {
	d := mustDual2(t, 1.0, []string{"v0", "v1"}, []float64{1, 2}, nil)
	got := d.Mul(d.Pow(-1))
	if !got.EqualFloat(1.0) {
		t.Errorf("d * d^-1 = %v, want scalar 1", got)
	}
}

func TestExp2(t *testing.T) {
	d := mustDual2(t, 1.0, []string{"v0", "v1"}, []float64{1, 2}, nil)
	got := d.Exp()
	if !got.SharesVars(d) {
		t.Error("Exp should keep the registry")
	}
	e := math.Exp(1)
	want := mustDual2(t, e,
		[]string{"v0", "v1"},
		[]float64{e, 2 * e},
		[]float64{0.5 * e, e, e, 2 * e})
	if !got.Equal(want) {
		t.Errorf("Exp = %v, want %v", got, want)
	}
}

func TestLog2(t *testing.T) {
	d := mustDual2(t, 1.0, []string{"v0", "v1"}, []float64{1, 2}, nil)
	got := d.Log()
	if !got.SharesVars(d) {
		t.Error("Log should keep the registry")
	}
	want := mustDual2(t, 0,
		[]string{"v0", "v1"},
		[]float64{1, 2},
		[]float64{-0.5, -1, -1, -2})
	if !got.Equal(want) {
		t.Errorf("Log = %v, want %v", got, want)
	}
}

func TestAbs2(t *testing.T) {
	d := mustDual2(t, -2.0, []string{"v0", "v1"}, []float64{1, 2}, nil)
	got := d.Abs()
	assertFloat(t, 2.0, got.Real(), "Real")
	assertFloats(t, []float64{-1, -2}, got.Grad([]string{"v0", "v1"}), "Grad")
}

func TestPow2ChainRule(t *testing.T) {
	// f(x) = x^3 at x=2: f''=12, stored as 6.
	d := mustDual2(t, 2.0, []string{"x"}, []float64{1}, nil)
	p := d.Pow(3)
	assertNear(t, 8.0, p.Real(), "Real")
	assertFloats(t, []float64{12}, p.Grad([]string{"x"}), "Grad")
	assertHess(t, []float64{6}, p, []string{"x"}, "Hess")
}

func TestGrad2Extraction(t *testing.T) {
	d := mustDual2(t, 2.0,
		[]string{"x", "y"},
		[]float64{1, 2},
		[]float64{1, 1.5, 1.5, 2})
	h := d.Grad2([]string{"y", "x", "missing"})
	want := []float64{
		4, 3, 0,
		3, 2, 0,
		0, 0, 0,
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(h.At(i, j)-want[i*3+j]) > 1e-12 {
				t.Errorf("Grad2[%d,%d] = %v, want %v", i, j, h.At(i, j), want[i*3+j])
			}
		}
	}

	empty := d.Grad2(nil)
	if r, c := empty.Dims(); r != 0 || c != 0 {
		t.Errorf("empty request dims = %dx%d, want 0x0", r, c)
	}
}

func TestGradManifold(t *testing.T) {
	// Stored Hessian is half the externally visible one, so Grad2 would
	// report [[2,3,4],[3,5,6],[4,6,7]] here.
	d := mustDual2(t, 2.0,
		[]string{"x", "y", "z"},
		[]float64{1, 2, 3},
		[]float64{1, 1.5, 2, 1.5, 2.5, 3, 2, 3, 3.5})
	out := d.GradManifold([]string{"y", "z"})
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	assertFloat(t, 2.0, out[0].Real(), "first real")
	assertFloat(t, 3.0, out[1].Real(), "second real")
	assertFloats(t, []float64{5, 6}, out[0].Grad([]string{"y", "z"}), "first grad")
	assertFloats(t, []float64{6, 7}, out[1].Grad([]string{"y", "z"}), "second grad")
	assertHess(t, []float64{0, 0, 0, 0}, out[0], []string{"y", "z"}, "zero second order")
	if !out[0].SharesVars(out[1]) {
		t.Error("manifold values should share one registry")
	}
}

func TestOrdering2(t *testing.T) {
	d1 := mustDual2(t, 1.0, []string{"v0", "v1"}, []float64{1, 2}, nil)
	if !d1.Less(FromFloat2(2)) || !d1.Greater(FromFloat2(0.5)) {
		t.Error("ordering against scalars should follow the real part")
	}
	if d1.CmpFloat(1.0) != 0 {
		t.Error("CmpFloat at equal reals should be 0")
	}
	d3 := mustDual2(t, 1.0, []string{"v3"}, []float64{10}, nil)
	if !d1.GreaterEq(d3) || !d1.LessEq(d3) {
		t.Error("equal reals with different vars should order as equal")
	}
}

func TestEqual2Hessian(t *testing.T) {
	a := mustDual2(t, 1.0, []string{"x"}, []float64{1}, []float64{2})
	b := mustDual2(t, 1.0, []string{"x"}, []float64{1}, []float64{2 + 1e-10})
	c := mustDual2(t, 1.0, []string{"x"}, []float64{1}, []float64{2 + 1e-7})
	if !a.Equal(b) {
		t.Error("Hessian within tolerance should compare equal")
	}
	if a.Equal(c) {
		t.Error("Hessian beyond tolerance should not compare equal")
	}
}

func TestConversions(t *testing.T) {
	d, _ := NewWithGrad(1.5, []string{"a", "b"}, []float64{1, 2})
	up := d.ToDual2()
	if up.Vars() != d.Vars() {
		t.Error("upgrade should keep the registry")
	}
	assertFloats(t, []float64{1, 2}, up.Grad([]string{"a", "b"}), "upgrade grad")
	assertHess(t, []float64{0, 0, 0, 0}, up, []string{"a", "b"}, "upgrade zero Hessian")

	down := up.ToDual()
	if !down.Equal(d) {
		t.Error("upgrade then downgrade should round-trip")
	}

	s := FromFloat2(3.25)
	assertFloat(t, 3.25, s.Real(), "scalar lift real")
	if s.Vars().Len() != 0 {
		t.Error("scalar lift should carry no variables")
	}
}

func TestSum2Accumulates(t *testing.T) {
	xs := []Dual2{
		New2(1.0, []string{"a"}),
		New2(2.0, []string{"b"}),
	}
	s := Sum2(xs)
	assertFloat(t, 3.0, s.Real(), "Real")
	assertNames(t, []string{"a", "b"}, s.Vars().Names(), "vars")
	assertFloats(t, []float64{1, 1}, s.Grad([]string{"a", "b"}), "Grad")
}
