package symexpr

// Mod builds the floor-complementary remainder of Dividend and Divisor
// (sign follows the Divisor, or zero). Like IntDiv, a zero divisor is an
// arithmetic-domain error.
func Mod(n, d Expr) (Expr, error) {
	if dc, ok := d.(*ConstExpr); ok {
		if dc.Value.Sign() == 0 {
			return nil, domainErrorf("Mod: modulo by zero")
		}
		if dc.Value.CmpAbs(bigOne) == 0 {
			return ConstInt(0), nil
		}
		if nc, ok := n.(*ConstExpr); ok {
			return Const(floorMod(nc.Value, dc.Value)), nil
		}
	}
	if nc, ok := n.(*ConstExpr); ok && nc.Value.Sign() == 0 {
		return ConstInt(0), nil
	}
	if Equal(n, d) {
		return ConstInt(0), nil
	}
	if m, ok := n.(*ModExpr); ok && Equal(m.Divisor, d) {
		return n, nil // Mod(Mod(n,d),d) == Mod(n,d)
	}
	if MultipleOf(n, d) {
		return ConstInt(0), nil
	}

	// Absorbing pattern: any additive term of n that is itself a multiple
	// of d contributes nothing to the remainder.
	if sum, ok := n.(*SumExpr); ok {
		var kept []Expr
		dropped := false
		for _, term := range sum.Terms {
			if MultipleOf(term, d) {
				dropped = true
				continue
			}
			kept = append(kept, term)
		}
		if dropped {
			reduced := Add(kept...)
			if !Equal(reduced, n) {
				return Mod(reduced, d)
			}
		}
	}

	return &ModExpr{Dividend: n, Divisor: d}, nil
}
