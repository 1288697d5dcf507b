package symexpr

import "sync/atomic"

// VarID is the process-unique identity of a Var. Uniqueness of the id is
// the variable's sole identity; its name is decorative.
type VarID uint64

var varCounter atomic.Uint64

// nextVarID hands out a monotone, thread-safe id. Wrap-around is benign: on
// the (practically unreachable) event that the counter overflows back to
// zero, it is simply reseeded at one rather than handing out id zero,
// which this package reserves as "no id".
func nextVarID() VarID {
	id := varCounter.Add(1)
	if id == 0 {
		varCounter.Store(1)
		id = 1
	}
	return VarID(id)
}

// simplifyVar collapses a Var to a constant when its range has pinned it
// to a single known value (min == max, both constant); otherwise the
// variable is returned unchanged.
func simplifyVar(v *VarExpr) Expr {
	lo, hi := v.Range.Min(), v.Range.Max()
	loC, loOK := lo.(*ConstExpr)
	hiC, hiOK := hi.(*ConstExpr)
	if loOK && hiOK && loC.Value.Cmp(hiC.Value) == 0 {
		return Const(loC.Value)
	}
	return v
}
