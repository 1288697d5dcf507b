package symexpr

import (
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// cmpOptions lets cmp.Equal reach into every concrete expression type's
// unexported fields, and teaches it the one identity rule that isn't
// "compare the fields": two Vars (and, transitively, two OpaqueVars) are
// equal iff their ID matches, regardless of Name or Range.
var cmpOptions = cmp.Options{
	cmp.AllowUnexported(
		base{},
		ConstExpr{}, posInfExpr{}, negInfExpr{}, unknownExpr{},
		VarExpr{}, OpaqueVarExpr{}, NamedFnExpr{}, LookupExpr{},
		SumExpr{}, ProdExpr{}, PowExpr{}, IntDivExpr{}, ModExpr{},
		LogExpr{}, FloorExpr{}, CeilExpr{}, AbsExpr{}, IfThenElseExpr{},
		BigSumExpr{}, Predicate{},
		startFromRange{}, goesToRange{}, rangeAddRange{}, rangeMulRange{}, unknownRangeT{},
	),
	cmp.Comparer(func(a, b *VarExpr) bool { return a.ID == b.ID }),
	cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 }),
}

// Equal reports deep structural equality of two simplified expressions. It
// rejects fast on a Digest mismatch and only falls back to the full
// go-cmp-driven tree walk - the "witness" - when the digests agree, since
// the digest is cheap to compute and wrong only in the rare collision
// case.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if Digest(a) != Digest(b) {
		return false
	}
	return cmp.Equal(a, b, cmpOptions)
}
