package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarVariant(t *testing.T) {
	n := Scalar(2.5)
	assert.Equal(t, OrderZero, n.Order())
	assert.Equal(t, 2.5, n.Real())
	_, isDual := n.Dual()
	assert.False(t, isDual)
	_, isDual2 := n.Dual2()
	assert.False(t, isDual2)
}

func TestNumberAddPairings(t *testing.T) {
	d := New(1.0, []string{"x"}).Number()
	d2 := New2(1.0, []string{"x"}).Number()

	tests := []struct {
		name      string
		a, b      Number
		wantOrder ADOrder
		wantReal  float64
	}{
		{"scalar+scalar", Scalar(1), Scalar(2), OrderZero, 3},
		{"scalar+dual", Scalar(2), d, OrderOne, 3},
		{"dual+scalar", d, Scalar(2), OrderOne, 3},
		{"dual+dual", d, d, OrderOne, 2},
		{"scalar+dual2", Scalar(2), d2, OrderTwo, 3},
		{"dual2+dual2", d2, d2, OrderTwo, 2},
	}
	for _, tt := range tests {
		got, err := tt.a.Add(tt.b)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.wantOrder, got.Order(), tt.name)
		assert.Equal(t, tt.wantReal, got.Real(), tt.name)
	}
}

func TestNumberCrossVariantFails(t *testing.T) {
	d := New(1.0, []string{"x"}).Number()
	d2 := New2(2.0, []string{"y"}).Number()

	_, err := d.Add(d2)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = d2.Sub(d)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = d.Mul(d2)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = d2.Div(d)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = d.Equal(d2)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = d.Cmp(d2)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestNumberScalarNeverFails(t *testing.T) {
	s := Scalar(2)
	for _, v := range []Number{New(1.0, []string{"x"}).Number(), New2(1.0, []string{"x"}).Number()} {
		for name, op := range map[string]func(Number, Number) (Number, error){
			"Add": Number.Add,
			"Sub": Number.Sub,
			"Mul": Number.Mul,
			"Div": Number.Div,
		} {
			_, err := op(s, v)
			assert.NoError(t, err, "scalar %s variant", name)
			_, err = op(v, s)
			assert.NoError(t, err, "variant %s scalar", name)
		}
		_, err := s.Equal(v)
		assert.NoError(t, err)
		_, err = v.Cmp(s)
		assert.NoError(t, err)
	}
}

func TestNumberArithmeticMatchesDual(t *testing.T) {
	a, _ := NewWithGrad(1.0, []string{"v0", "v1"}, []float64{1, 2})
	b, _ := NewWithGrad(2.0, []string{"v0", "v2"}, []float64{0, 3})

	sum, err := a.Number().Add(b.Number())
	require.NoError(t, err)
	got, ok := sum.Dual()
	require.True(t, ok)
	assert.True(t, got.Equal(a.Add(b)))

	quot, err := a.Number().Div(Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, 0.5, quot.Real())
}

func TestNumberUnary(t *testing.T) {
	s := Scalar(4)
	assert.Equal(t, math.Exp(4), s.Exp().Real())
	assert.Equal(t, math.Log(4), s.Log().Real())
	assert.Equal(t, 2.0, s.Pow(0.5).Real())
	assert.Equal(t, 4.0, s.Neg().Abs().Real())

	d := New(2.0, []string{"x"}).Number()
	exp := d.Exp()
	assert.Equal(t, OrderOne, exp.Order())
	dd, _ := exp.Dual()
	assertFloats(t, []float64{math.Exp(2)}, dd.Grad([]string{"x"}), "Exp grad through Number")
}

func TestWithOrder(t *testing.T) {
	s := Scalar(3.0)

	one := s.WithOrder(OrderOne, []string{"a", "b"})
	d, ok := one.Dual()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, d.Vars().Names())
	assertFloats(t, []float64{1, 1}, d.Grad([]string{"a", "b"}), "lift grad")

	two := one.WithOrder(OrderTwo, nil)
	d2, ok := two.Dual2()
	require.True(t, ok)
	assert.Same(t, d.Vars(), d2.Vars())

	down := two.WithOrder(OrderOne, nil)
	dd, ok := down.Dual()
	require.True(t, ok)
	assert.True(t, dd.Equal(d))

	flat := two.WithOrder(OrderZero, nil)
	assert.Equal(t, OrderZero, flat.Order())
	assert.Equal(t, 3.0, flat.Real())

	same := two.WithOrder(OrderTwo, []string{"ignored"})
	got, _ := same.Dual2()
	assert.Same(t, d2.Vars(), got.Vars())
}

func TestNumberGrad(t *testing.T) {
	assert.Equal(t, []float64{0, 0}, Scalar(1).Grad([]string{"a", "b"}))

	d, _ := NewWithGrad(1.0, []string{"a"}, []float64{2})
	assert.Equal(t, []float64{2, 0}, d.Number().Grad([]string{"a", "b"}))
}

func TestSumNumbers(t *testing.T) {
	ns := []Number{
		Scalar(1),
		New(2.0, []string{"a"}).Number(),
		New(3.0, []string{"b"}).Number(),
	}
	s, err := SumNumbers(ns)
	require.NoError(t, err)
	assert.Equal(t, 6.0, s.Real())
	d, ok := s.Dual()
	require.True(t, ok)
	assertFloats(t, []float64{1, 1}, d.Grad([]string{"a", "b"}), "summed grad")

	_, err = SumNumbers(append(ns, New2(1.0, nil).Number()))
	require.ErrorIs(t, err, ErrTypeMismatch)

	zero, err := SumNumbers(nil)
	require.NoError(t, err)
	assert.Equal(t, OrderZero, zero.Order())
}
