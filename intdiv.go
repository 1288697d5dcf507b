package symexpr

import "math/big"

// IntDiv builds floor(n/d). d == 0 is an arithmetic-domain error; every
// other case either folds or falls back to a raw IntDiv node.
func IntDiv(n, d Expr) (Expr, error) {
	if dc, ok := d.(*ConstExpr); ok {
		if dc.Value.Sign() == 0 {
			return nil, domainErrorf("IntDiv: division by zero")
		}
		if dc.Value.Cmp(bigOne) == 0 {
			return n, nil
		}
		if dc.Value.Cmp(big.NewInt(-1)) == 0 {
			return Neg(n), nil
		}
		if nc, ok := n.(*ConstExpr); ok {
			return Const(floorDiv(nc.Value, dc.Value)), nil
		}
	}
	if nc, ok := n.(*ConstExpr); ok && nc.Value.Sign() == 0 {
		return ConstInt(0), nil
	}
	if Equal(n, d) {
		return ConstInt(1), nil
	}
	if MultipleOf(n, d) {
		q, err := exactQuotient(n, d)
		if err == nil {
			return q, nil
		}
	}
	return &IntDivExpr{Num: n, Den: d}, nil
}

// exactQuotient divides n by d when MultipleOf(n, d) has already certified
// that d's factors are all present in n, by removing each of d's factors
// from n's factor list directly rather than via IntDiv again.
func exactQuotient(n, d Expr) (Expr, error) {
	dCoef, dFactors := decomposeFactors(d)
	nCoef, nFactors := decomposeFactors(n)
	if dCoef.Sign() == 0 {
		return nil, domainErrorf("exactQuotient: zero coefficient")
	}
	remCoef := new(big.Int)
	quoCoef, _ := new(big.Int).QuoRem(nCoef, dCoef, remCoef)
	if remCoef.Sign() != 0 {
		return nil, domainErrorf("exactQuotient: inexact coefficient")
	}
	remaining := append([]factorExp{}, nFactors...)
	for _, df := range dFactors {
		matched := false
		for i, rf := range remaining {
			if Equal(rf.base, df.base) && rf.exp.Cmp(df.exp) >= 0 {
				remaining[i].exp = new(big.Int).Sub(rf.exp, df.exp)
				matched = true
				break
			}
		}
		if !matched {
			return nil, domainErrorf("exactQuotient: missing factor")
		}
	}
	parts := []Expr{Const(quoCoef)}
	for _, rf := range remaining {
		if rf.exp.Sign() != 0 {
			parts = append(parts, Pow(rf.base, Const(rf.exp)))
		}
	}
	return Mul(parts...), nil
}
