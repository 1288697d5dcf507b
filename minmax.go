package symexpr

import "math/big"

// Min and Max compute sound bounds on the value of e, following a
// case-wise rule table. They are a best-effort over-approximation, not a
// complete decision procedure: whenever a case isn't covered, or a covered
// case can't get concrete bounds for every sub-expression, they fall back
// to ExprUnknown rather than guess.
func Min(e Expr) Expr { return bound(e, true) }
func Max(e Expr) Expr { return bound(e, false) }

func isUnknownExpr(e Expr) bool {
	_, ok := e.(*unknownExpr)
	return ok
}

func bound(e Expr, wantMin bool) Expr {
	switch t := e.(type) {
	case *ConstExpr, *posInfExpr, *negInfExpr:
		return e
	case *unknownExpr:
		return ExprUnknown
	case *VarExpr:
		if wantMin {
			return t.Range.Min()
		}
		return t.Range.Max()
	case *OpaqueVarExpr:
		return e // frozen: its own bound is itself
	case *NamedFnExpr:
		if wantMin {
			return t.Range.Min()
		}
		return t.Range.Max()
	case *SumExpr:
		parts := make([]Expr, len(t.Terms))
		for i, term := range t.Terms {
			p := bound(term, wantMin)
			// Add has no infinity arithmetic, so an unbounded term leaves
			// the sum without a concrete bound.
			switch p.(type) {
			case *unknownExpr, *posInfExpr, *negInfExpr:
				return ExprUnknown
			}
			parts[i] = p
		}
		return Add(parts...)
	case *ProdExpr:
		return prodBound(t, wantMin)
	case *ModExpr:
		return modBound(t, wantMin)
	case *IfThenElseExpr:
		tb, eb := bound(t.Then, wantMin), bound(t.Else, wantMin)
		if isUnknownExpr(tb) || isUnknownExpr(eb) {
			return ExprUnknown
		}
		if wantMin {
			return pointwiseExtreme(tb, eb, true)
		}
		return pointwiseExtreme(tb, eb, false)
	case *LogExpr:
		// monotonic in x for a fixed base > 1.
		xb := bound(t.X, wantMin)
		if isUnknownExpr(xb) {
			return ExprUnknown
		}
		return Log(t.Base, xb)
	case *AbsExpr:
		return absBound(t, wantMin)
	case *FloorExpr:
		b := bound(t.E, wantMin)
		if c, ok := b.(*ConstExpr); ok {
			return Floor(Const(c.Value))
		}
		return ExprUnknown
	case *CeilExpr:
		b := bound(t.E, wantMin)
		if c, ok := b.(*ConstExpr); ok {
			return Ceil(Const(c.Value))
		}
		return ExprUnknown
	default:
		// Pow, IntDiv, Lookup, BigSum: no case-wise rule covers these,
		// sound fallback is Unknown.
		return ExprUnknown
	}
}

// pointwiseExtreme picks the numerically smaller (findMin=true) or larger
// of two already-bounded expressions when they're both constant; otherwise
// it can't soundly pick one over the other and gives up.
func pointwiseExtreme(a, b Expr, findMin bool) Expr {
	ac, aok := a.(*ConstExpr)
	bc, bok := b.(*ConstExpr)
	if aok && bok {
		c := ac.Value.Cmp(bc.Value)
		if (findMin && c <= 0) || (!findMin && c >= 0) {
			return a
		}
		return b
	}
	if Equal(a, b) {
		return a
	}
	return ExprUnknown
}

// prodBound implements "Prod uses the sign to choose which corner of each
// factor participates": it walks factors in canonical order tracking the
// accumulated sign of the partial product, and at each step picks whichever
// corner (Min or Max) of that factor pushes the partial product toward the
// extreme being computed. Any factor with Unknown sign, or without concrete
// bounds of its own, forces the whole product to Unknown.
func prodBound(p *ProdExpr, wantMin bool) Expr {
	accSign := SignPositive
	parts := make([]Expr, 0, len(p.Factors))
	for _, f := range p.Factors {
		fs := SignOf(f)
		if fs == SignUnknown {
			return ExprUnknown
		}
		lo, hi := bound(f, true), bound(f, false)
		if isUnknownExpr(lo) || isUnknownExpr(hi) {
			return ExprUnknown
		}
		wantHighCorner := wantMin == (accSign == SignNegative)
		if fs == SignNegative {
			wantHighCorner = !wantHighCorner
		}
		if wantHighCorner {
			parts = append(parts, hi)
		} else {
			parts = append(parts, lo)
		}
		accSign = accSign.xor(fs)
	}
	return Mul(parts...)
}

// modBound derives [0, |divisor|-1], sign-adjusted for the floor-remainder
// convention (result sign follows the divisor, never the dividend).
func modBound(m *ModExpr, wantMin bool) Expr {
	dc, ok := m.Divisor.(*ConstExpr)
	if !ok {
		return ExprUnknown
	}
	absD := new(big.Int).Abs(dc.Value)
	top := new(big.Int).Sub(absD, bigOne)
	if dc.Value.Sign() > 0 {
		if wantMin {
			return ConstInt(0)
		}
		return Const(top)
	}
	if wantMin {
		return Const(new(big.Int).Neg(top))
	}
	return ConstInt(0)
}

// absBound gives Abs a lower bound of 0 (or the sign-aware distance from
// zero when the operand's own sign is known) and an upper bound equal to
// the larger magnitude of the operand's own bounds.
func absBound(a *AbsExpr, wantMin bool) Expr {
	lo, hi := bound(a.E, true), bound(a.E, false)
	if isUnknownExpr(lo) || isUnknownExpr(hi) {
		if wantMin {
			return ConstInt(0)
		}
		return ExprUnknown
	}
	loC, loOK := lo.(*ConstExpr)
	hiC, hiOK := hi.(*ConstExpr)
	if !loOK || !hiOK {
		if wantMin {
			return ConstInt(0)
		}
		return ExprUnknown
	}
	if wantMin {
		if loC.Value.Sign() > 0 {
			return Const(loC.Value)
		}
		if hiC.Value.Sign() < 0 {
			return Const(new(big.Int).Neg(hiC.Value))
		}
		return ConstInt(0)
	}
	absLo := new(big.Int).Abs(loC.Value)
	absHi := new(big.Int).Abs(hiC.Value)
	if absLo.Cmp(absHi) > 0 {
		return Const(absLo)
	}
	return Const(absHi)
}
