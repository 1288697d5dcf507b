package symexpr

import "math/big"

// Log builds logarithm-base-Base of X. It folds only when both operands
// are constants and the result is an exact integer; otherwise it stays
// symbolic. A base below 2, or a non-positive argument, is outside the
// domain this kernel reasons about and is kept unevaluated rather than
// rejected, since the base or argument may later be substituted.
func Log(base, x Expr) Expr {
	bc, bok := base.(*ConstExpr)
	xc, xok := x.(*ConstExpr)
	if bok && xok && bc.Value.Cmp(bigOne) > 0 && xc.Value.Sign() > 0 {
		if n, exact := exactLog(bc.Value, xc.Value); exact {
			return ConstInt(n)
		}
	}
	return &LogExpr{Base: base, X: x}
}

// exactLog returns n such that base^n == x, when such an integer n >= 0
// exists.
func exactLog(base, x *big.Int) (int64, bool) {
	if x.Cmp(bigOne) == 0 {
		return 0, true
	}
	acc := new(big.Int).Set(base)
	var n int64 = 1
	for acc.Cmp(x) < 0 {
		acc.Mul(acc, base)
		n++
	}
	return n, acc.Cmp(x) == 0
}
