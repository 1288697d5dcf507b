package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEmptySigmaIsNoOp(t *testing.T) {
	x := Var("x")
	e := Add(x, ConstInt(1))
	got := Substitute(e, map[VarID]Expr{})
	assert.True(t, Equal(got, e))
}

func TestSubstituteReplacesMatchingVar(t *testing.T) {
	x := Var("x")
	e := Add(x, ConstInt(1))
	got := Substitute(e, map[VarID]Expr{x.(*VarExpr).ID: ConstInt(4)})
	assert.True(t, Equal(got, ConstInt(5)))
}

func TestSubstituteLeavesOtherVarsAlone(t *testing.T) {
	x, y := Var("x"), Var("y")
	e := Add(x, y)
	got := Substitute(e, map[VarID]Expr{x.(*VarExpr).ID: ConstInt(2)})
	assert.True(t, Equal(got, Add(ConstInt(2), y)))
}

func TestSubstitutePropagatesIntoVarRange(t *testing.T) {
	bound := Var("bound")
	boundID := bound.(*VarExpr).ID
	v := WithRange(Var("n"), StartFrom(bound))
	got := Substitute(v, map[VarID]Expr{boundID: ConstInt(0)})
	gv, ok := got.(*VarExpr)
	assert.True(t, ok)
	assert.True(t, Equal(gv.Range.Min(), ConstInt(0)))
}

func TestSubstituteIntoBigSumDoesNotTouchBoundVariable(t *testing.T) {
	total := BigSum(ConstInt(1), ConstInt(3), func(i Expr) Expr { return i })
	assert.True(t, Equal(total, ConstInt(6)))

	// with a symbolic upper bound the sum closes to x*(x+1)/2 over the
	// outer variable only; substituting x afterwards gives the same total.
	x := Var("x")
	sum := BigSum(ConstInt(1), x, func(i Expr) Expr { return i })
	got := Substitute(sum, map[VarID]Expr{x.(*VarExpr).ID: ConstInt(3)})
	assert.True(t, Equal(got, ConstInt(6)))
}

func TestSubstituteRebuildsThroughSmartConstructors(t *testing.T) {
	x, y := Var("x"), Var("y")
	e := Mul(x, y)
	got := Substitute(e, map[VarID]Expr{y.(*VarExpr).ID: ConstInt(0)})
	assert.True(t, Equal(got, ConstInt(0)))
}
