package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowZeroExponentIsOne(t *testing.T) {
	x := Var("x")
	assert.True(t, Equal(Pow(x, ConstInt(0)), ConstInt(1)))
	assert.True(t, Equal(Pow(ConstInt(0), ConstInt(0)), ConstInt(1)))
}

func TestPowOneExponentIsBase(t *testing.T) {
	x := Var("x")
	assert.True(t, Equal(Pow(x, ConstInt(1)), x))
}

func TestPowOneBaseIsOne(t *testing.T) {
	x := Var("x")
	assert.True(t, Equal(Pow(ConstInt(1), x), ConstInt(1)))
}

func TestPowZeroBasePositiveExponentIsZero(t *testing.T) {
	assert.True(t, Equal(Pow(ConstInt(0), ConstInt(5)), ConstInt(0)))
}

func TestPowNestedMultipliesExponents(t *testing.T) {
	x := Var("x")
	got := Pow(Pow(x, ConstInt(2)), ConstInt(3))
	want := Pow(x, ConstInt(6))
	assert.True(t, Equal(got, want))
}

func TestPowConstantFolding(t *testing.T) {
	got := Pow(ConstInt(2), ConstInt(10))
	assert.True(t, Equal(got, ConstInt(1024)))
}

func TestPowDistributesOverProduct(t *testing.T) {
	x, y := Var("x"), Var("y")
	got := Pow(Mul(x, y), ConstInt(2))
	want := Mul(Pow(x, ConstInt(2)), Pow(y, ConstInt(2)))
	assert.True(t, Equal(got, want))
}
