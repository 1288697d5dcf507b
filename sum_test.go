package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFlattensAndMergesConstants(t *testing.T) {
	x := Var("x")
	got := Add(Add(ConstInt(1), x), ConstInt(2))
	want := Add(x, ConstInt(3))
	assert.True(t, Equal(got, want))
	assert.Len(t, got.(*SumExpr).Terms, 2)
}

func TestAddCombinesLikeTerms(t *testing.T) {
	x := Var("x")
	got := Add(x, x, x)
	want := Mul(ConstInt(3), x)
	assert.True(t, Equal(got, want))
}

func TestAddElidesZero(t *testing.T) {
	x := Var("x")
	got := Add(x, ConstInt(0))
	assert.True(t, Equal(got, x))
}

func TestAddIsCommutative(t *testing.T) {
	x, y := Var("x"), Var("y")
	a := Add(x, y)
	b := Add(y, x)
	assert.True(t, Equal(a, b))
	assert.Equal(t, Digest(a), Digest(b))
}

func TestSelfSubtractionIsZero(t *testing.T) {
	x := Var("x")
	got := Add(x, Neg(x))
	assert.True(t, Equal(got, ConstInt(0)))
}

func TestAddIsIdempotentUnderReconstruction(t *testing.T) {
	x, y := Var("x"), Var("y")
	once := Add(x, y, ConstInt(3))
	twice := Add(once.(*SumExpr).Terms[0], once.(*SumExpr).Terms[1], once.(*SumExpr).Terms[2])
	assert.True(t, Equal(once, twice))
}
