package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntDivByZeroIsDomainError(t *testing.T) {
	x := Var("x")
	_, err := IntDiv(x, ConstInt(0))
	assert.ErrorIs(t, err, ErrArithmeticDomain)
}

func TestIntDivConstantFolding(t *testing.T) {
	got, err := IntDiv(ConstInt(7), ConstInt(2))
	assert.NoError(t, err)
	assert.True(t, Equal(got, ConstInt(3)))
}

func TestIntDivFloorsTowardNegativeInfinity(t *testing.T) {
	got, err := IntDiv(ConstInt(-7), ConstInt(2))
	assert.NoError(t, err)
	assert.True(t, Equal(got, ConstInt(-4)))
}

func TestIntDivByOneIsIdentity(t *testing.T) {
	x := Var("x")
	got, err := IntDiv(x, ConstInt(1))
	assert.NoError(t, err)
	assert.True(t, Equal(got, x))
}

func TestIntDivByNegativeOneNegates(t *testing.T) {
	x := Var("x")
	got, err := IntDiv(x, ConstInt(-1))
	assert.NoError(t, err)
	assert.True(t, Equal(got, Neg(x)))
}

func TestIntDivOfZeroDividendIsZero(t *testing.T) {
	x := Var("x")
	got, err := IntDiv(ConstInt(0), x)
	assert.NoError(t, err)
	assert.True(t, Equal(got, ConstInt(0)))
}

func TestIntDivOfMultipleIsExact(t *testing.T) {
	x := Var("x")
	got, err := IntDiv(Mul(ConstInt(6), x), ConstInt(2))
	assert.NoError(t, err)
	assert.True(t, Equal(got, Mul(ConstInt(3), x)))
}

func TestModByZeroIsDomainError(t *testing.T) {
	x := Var("x")
	_, err := Mod(x, ConstInt(0))
	assert.ErrorIs(t, err, ErrArithmeticDomain)
}

func TestModConstantFollowsDivisorSign(t *testing.T) {
	got, err := Mod(ConstInt(-7), ConstInt(2))
	assert.NoError(t, err)
	assert.True(t, Equal(got, ConstInt(1))) // floor-remainder: sign(result) == sign(divisor)
}

func TestModOfZeroDividendIsZero(t *testing.T) {
	x := Var("x")
	got, err := Mod(ConstInt(0), x)
	assert.NoError(t, err)
	assert.True(t, Equal(got, ConstInt(0)))
}

func TestModOfMultipleIsZero(t *testing.T) {
	x := Var("x")
	got, err := Mod(Mul(ConstInt(4), x), ConstInt(2))
	assert.NoError(t, err)
	assert.True(t, Equal(got, ConstInt(0)))
}

func TestModAbsorbsAdditiveMultiple(t *testing.T) {
	x, y := Var("x"), Var("y")
	got, err := Mod(Add(x, Mul(ConstInt(4), y)), ConstInt(4))
	assert.NoError(t, err)
	want, err := Mod(x, ConstInt(4))
	assert.NoError(t, err)
	assert.True(t, Equal(got, want))
}

func TestDivModRoundTrip(t *testing.T) {
	for _, n := range []int64{-11, -1, 0, 1, 11} {
		for _, d := range []int64{-3, 3} {
			q, err := IntDiv(ConstInt(n), ConstInt(d))
			assert.NoError(t, err)
			r, err := Mod(ConstInt(n), ConstInt(d))
			assert.NoError(t, err)
			recombined := Add(Mul(q, ConstInt(d)), r)
			assert.True(t, Equal(recombined, ConstInt(n)), "n=%d d=%d", n, d)
		}
	}
}
