package symexpr

// Floor and Ceil build floor(e) and ceil(e). Both fold away when e already
// denotes an integer: a constant, or anything already wrapped in IntDiv,
// Mod, Floor or Ceil (each of those always denotes an integer, so
// Floor/Ceil of one of them is redundant). Everything else is kept
// symbolic.
func Floor(e Expr) Expr {
	if isAlreadyInteger(e) {
		return e
	}
	return &FloorExpr{E: e}
}

func Ceil(e Expr) Expr {
	if isAlreadyInteger(e) {
		return e
	}
	return &CeilExpr{E: e}
}

func isAlreadyInteger(e Expr) bool {
	switch e.(type) {
	case *ConstExpr, *IntDivExpr, *ModExpr, *FloorExpr, *CeilExpr:
		return true
	}
	return false
}

// Abs builds |e|: fold a constant outright, drop the wrapper when e's sign
// is already known non-negative, rewrite to -e when e's sign is known
// strictly negative, and collapse Abs(Abs(x)) and Abs(-x) into a single
// Abs.
func Abs(e Expr) Expr {
	if c, ok := e.(*ConstExpr); ok {
		return Const(absBig(c.Value))
	}
	if a, ok := e.(*AbsExpr); ok {
		return a
	}
	switch SignOf(e) {
	case SignPositive:
		return e
	case SignNegative:
		return Neg(e)
	}
	if p, ok := e.(*ProdExpr); ok {
		if c, ok := p.Factors[0].(*ConstExpr); ok && c.Value.Sign() < 0 {
			flipped := make([]Expr, len(p.Factors))
			flipped[0] = Const(absBig(c.Value))
			copy(flipped[1:], p.Factors[1:])
			return Abs(Mul(flipped...))
		}
	}
	return &AbsExpr{E: e}
}
