package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfThenElseFoldsWhenPredicateIsStaticallyTrue(t *testing.T) {
	pred := NewPredicate(ConstInt(1), OpLt, ConstInt(2))
	got := IfThenElse(pred, ConstInt(10), ConstInt(20))
	assert.True(t, Equal(got, ConstInt(10)))
}

func TestIfThenElseFoldsWhenPredicateIsStaticallyFalse(t *testing.T) {
	pred := NewPredicate(ConstInt(5), OpLt, ConstInt(2))
	got := IfThenElse(pred, ConstInt(10), ConstInt(20))
	assert.True(t, Equal(got, ConstInt(20)))
}

func TestIfThenElseCollapsesWhenBranchesAreEqual(t *testing.T) {
	x := Var("x")
	y := Var("y")
	pred := NewPredicate(x, OpLt, y)
	got := IfThenElse(pred, ConstInt(7), ConstInt(7))
	assert.True(t, Equal(got, ConstInt(7)))
}

func TestIfThenElseSurvivesWhenUndecidable(t *testing.T) {
	x := Var("x")
	y := Var("y")
	pred := NewPredicate(x, OpLt, y)
	got := IfThenElse(pred, ConstInt(1), ConstInt(2))
	_, isRaw := got.(*IfThenElseExpr)
	assert.True(t, isRaw)
}

func TestPredicateSubstituteMakesItDecidable(t *testing.T) {
	x := Var("x")
	pred := NewPredicate(x, OpGe, ConstInt(0))
	substituted := pred.substitute(map[VarID]Expr{x.(*VarExpr).ID: ConstInt(3)})
	ok, decidable := substituted.evalConst()
	assert.True(t, decidable)
	assert.True(t, ok)
}

func TestPredicateNegateRoundTrips(t *testing.T) {
	assert.Equal(t, OpGe, OpLt.negate())
	assert.Equal(t, OpLt, OpGe.negate())
	assert.Equal(t, OpNe, OpEq.negate())
	assert.Equal(t, OpEq, OpNe.negate())
}

func TestIfThenElseOnSubstitutedPredicatePicksCorrectBranch(t *testing.T) {
	x := Var("x")
	pred := NewPredicate(x, OpEq, ConstInt(0))
	ite := IfThenElse(pred, ConstInt(100), ConstInt(200))
	got := Substitute(ite, map[VarID]Expr{x.(*VarExpr).ID: ConstInt(0)})
	assert.True(t, Equal(got, ConstInt(100)))
}
