package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigSumEmptyWhenFromAfterUpTo(t *testing.T) {
	got := BigSum(ConstInt(5), ConstInt(1), func(i Expr) Expr { return i })
	assert.True(t, Equal(got, ConstInt(0)))
}

func TestBigSumSingleIteration(t *testing.T) {
	got := BigSum(ConstInt(3), ConstInt(3), func(i Expr) Expr { return Mul(i, i) })
	assert.True(t, Equal(got, ConstInt(9)))
}

func TestBigSumConstantBodyMultipliesByCount(t *testing.T) {
	got := BigSum(ConstInt(1), ConstInt(10), func(i Expr) Expr { return ConstInt(2) })
	assert.True(t, Equal(got, ConstInt(20)))
}

func TestBigSumArithmeticSeriesClosedForm(t *testing.T) {
	got := BigSum(ConstInt(1), ConstInt(100), func(i Expr) Expr { return i })
	assert.True(t, Equal(got, ConstInt(5050)))
}

func TestBigSumDistributesOverAdditiveBody(t *testing.T) {
	got := BigSum(ConstInt(1), ConstInt(4), func(i Expr) Expr { return Add(i, ConstInt(1)) })
	// sum_{i=1}^{4} i + sum_{i=1}^{4} 1 = 10 + 4
	assert.True(t, Equal(got, ConstInt(14)))
}

func TestBigSumPullsOutConstantCoefficient(t *testing.T) {
	got := BigSum(ConstInt(1), ConstInt(5), func(i Expr) Expr { return Mul(ConstInt(3), i) })
	assert.True(t, Equal(got, ConstInt(45))) // 3 * (1+2+3+4+5)
}

func TestBigSumCountWithConstantFromAndSymbolicUpTo(t *testing.T) {
	n := Var("n")
	got := BigSum(ConstInt(3), n, func(i Expr) Expr { return ConstInt(1) })
	want := Add(n, ConstInt(-2))
	assert.True(t, Equal(got, want))
}
