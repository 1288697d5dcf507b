package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxOfConstantIsItself(t *testing.T) {
	assert.True(t, Equal(Min(ConstInt(7)), ConstInt(7)))
	assert.True(t, Equal(Max(ConstInt(7)), ConstInt(7)))
}

func TestMinMaxOfVarUsesItsRange(t *testing.T) {
	v := WithRange(Var("n"), RangeAdd(ConstInt(0), ConstInt(10), ConstInt(1)))
	assert.True(t, Equal(Min(v), ConstInt(0)))
	assert.True(t, Equal(Max(v), ConstInt(10)))
}

func TestMinMaxOfSumAddsBounds(t *testing.T) {
	a := WithRange(Var("a"), RangeAdd(ConstInt(0), ConstInt(5), ConstInt(1)))
	b := WithRange(Var("b"), RangeAdd(ConstInt(0), ConstInt(3), ConstInt(1)))
	assert.True(t, Equal(Min(Add(a, b)), ConstInt(0)))
	assert.True(t, Equal(Max(Add(a, b)), ConstInt(8)))
}

func TestMinMaxOfSumIsUnknownWhenAnyTermIsUnbounded(t *testing.T) {
	a := Var("a")
	b := WithRange(Var("b"), RangeAdd(ConstInt(0), ConstInt(3), ConstInt(1)))
	assert.True(t, Equal(Min(Add(a, b)), ExprUnknown))
}

func TestMinMaxOfProdWithPositiveFactors(t *testing.T) {
	a := WithRange(Var("a"), RangeAdd(ConstInt(1), ConstInt(5), ConstInt(1)))
	b := WithRange(Var("b"), RangeAdd(ConstInt(2), ConstInt(4), ConstInt(1)))
	assert.True(t, Equal(Min(Mul(a, b)), ConstInt(2)))
	assert.True(t, Equal(Max(Mul(a, b)), ConstInt(20)))
}

func TestModBoundIsZeroToDivisorMinusOneForPositiveDivisor(t *testing.T) {
	x := Var("x")
	m, err := Mod(x, ConstInt(5))
	assert.NoError(t, err)
	assert.True(t, Equal(Min(m), ConstInt(0)))
	assert.True(t, Equal(Max(m), ConstInt(4)))
}

func TestModBoundIsNegativeDivisorPlusOneToZeroForNegativeDivisor(t *testing.T) {
	x := Var("x")
	m, err := Mod(x, ConstInt(-5))
	assert.NoError(t, err)
	assert.True(t, Equal(Min(m), ConstInt(-4)))
	assert.True(t, Equal(Max(m), ConstInt(0)))
}

func TestAbsBoundIsNonNegative(t *testing.T) {
	v := WithRange(Var("v"), RangeAdd(ConstInt(-5), ConstInt(3), ConstInt(1)))
	assert.True(t, Equal(Min(Abs(v)), ConstInt(0)))
	assert.True(t, Equal(Max(Abs(v)), ConstInt(5)))
}

func TestMinMaxFallsBackToUnknownForUncoveredOps(t *testing.T) {
	x := Var("x")
	got, err := IntDiv(x, ConstInt(3))
	assert.NoError(t, err)
	assert.True(t, Equal(Min(got), ExprUnknown))
}
