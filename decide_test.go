package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGcdOfConstants(t *testing.T) {
	assert.True(t, Equal(Gcd(ConstInt(12), ConstInt(18)), ConstInt(6)))
}

func TestGcdSharedSymbolicFactor(t *testing.T) {
	x, y := Var("x"), Var("y")
	a := Mul(ConstInt(6), x, y)
	b := Mul(ConstInt(9), x)
	assert.True(t, Equal(Gcd(a, b), Mul(ConstInt(3), x)))
}

func TestGcdWithNothingInCommonIsOne(t *testing.T) {
	x, y := Var("x"), Var("y")
	assert.True(t, Equal(Gcd(x, y), ConstInt(1)))
}

func TestMultipleOfConstants(t *testing.T) {
	assert.True(t, MultipleOf(ConstInt(12), ConstInt(4)))
	assert.False(t, MultipleOf(ConstInt(13), ConstInt(4)))
}

func TestMultipleOfSymbolicProduct(t *testing.T) {
	x, y := Var("x"), Var("y")
	assert.True(t, MultipleOf(Mul(ConstInt(6), x, y), Mul(ConstInt(2), x)))
	assert.False(t, MultipleOf(Mul(ConstInt(6), x), Mul(ConstInt(2), y)))
}

func TestMultipleOfSelf(t *testing.T) {
	x := Var("x")
	e := Mul(ConstInt(3), x)
	assert.True(t, MultipleOf(e, e))
}

func TestIsSmallerConstants(t *testing.T) {
	r := IsSmaller(ConstInt(2), ConstInt(3))
	assert.NotNil(t, r)
	assert.True(t, *r)

	r = IsSmaller(ConstInt(3), ConstInt(2))
	assert.NotNil(t, r)
	assert.False(t, *r)
}

func TestIsSmallerPositiveVarAgainstZero(t *testing.T) {
	v := PosVar("n")
	r := IsSmaller(ConstInt(-1), v)
	assert.NotNil(t, r)
	assert.True(t, *r)
}

func TestIsSmallerSelfIsNotSmaller(t *testing.T) {
	v := Var("n")
	r := IsSmaller(v, v)
	assert.NotNil(t, r)
	assert.False(t, *r)
}

func TestIsSmallerUndecidableIsNil(t *testing.T) {
	a, b := Var("a"), Var("b")
	r := IsSmaller(a, b)
	assert.Nil(t, r)
}
