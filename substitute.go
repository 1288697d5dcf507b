package symexpr

// Substitute replaces every occurrence of the variables named in sigma with
// their mapped expressions, rebuilding the result through the smart
// constructors so it comes back already simplified. A substitution that
// makes an IntDiv or Mod divisor zero panics (see mustNoError).
func Substitute(e Expr, sigma map[VarID]Expr) Expr {
	if len(sigma) == 0 {
		return e
	}
	return substitute(e, sigma)
}

func substitute(e Expr, sigma map[VarID]Expr) Expr {
	if len(sigma) == 0 {
		return e
	}
	switch t := e.(type) {
	case *ConstExpr, *posInfExpr, *negInfExpr, *unknownExpr:
		return e
	case *VarExpr:
		if v, ok := sigma[t.ID]; ok {
			return v
		}
		return WithRange(t, t.Range.substituteRange(sigma))
	case *OpaqueVarExpr:
		if v, ok := sigma[t.Inner.ID]; ok {
			return v
		}
		return t
	case *NamedFnExpr:
		return &NamedFnExpr{Name: t.Name, Range: t.Range.substituteRange(sigma)}
	case *LookupExpr:
		tab := make([]Expr, len(t.Table))
		for i, e2 := range t.Table {
			tab[i] = substitute(e2, sigma)
		}
		return Lookup(tab, substitute(t.Index, sigma), t.ID)
	case *SumExpr:
		out := make([]Expr, len(t.Terms))
		for i, term := range t.Terms {
			out[i] = substitute(term, sigma)
		}
		return Add(out...)
	case *ProdExpr:
		out := make([]Expr, len(t.Factors))
		for i, f := range t.Factors {
			out[i] = substitute(f, sigma)
		}
		return Mul(out...)
	case *PowExpr:
		return Pow(substitute(t.Base, sigma), substitute(t.Exponent, sigma))
	case *IntDivExpr:
		return mustNoError(IntDiv(substitute(t.Num, sigma), substitute(t.Den, sigma)))
	case *ModExpr:
		return mustNoError(Mod(substitute(t.Dividend, sigma), substitute(t.Divisor, sigma)))
	case *LogExpr:
		return Log(substitute(t.Base, sigma), substitute(t.X, sigma))
	case *FloorExpr:
		return Floor(substitute(t.E, sigma))
	case *CeilExpr:
		return Ceil(substitute(t.E, sigma))
	case *AbsExpr:
		return Abs(substitute(t.E, sigma))
	case *IfThenElseExpr:
		return IfThenElse(t.Pred.substitute(sigma), substitute(t.Then, sigma), substitute(t.Else, sigma))
	case *BigSumExpr:
		from, upTo := substitute(t.From, sigma), substitute(t.UpTo, sigma)
		// the bound variable is never itself substituted: it is fresh and
		// scoped to this BigSum's Body.
		bodySigma := sigma
		if _, shadowed := sigma[t.BoundVar.ID]; shadowed {
			bodySigma = map[VarID]Expr{}
			for k, v := range sigma {
				if k != t.BoundVar.ID {
					bodySigma[k] = v
				}
			}
		}
		body := substitute(t.Body, bodySigma)
		return bigSumOf(from, upTo, t.BoundVar, body)
	default:
		return e
	}
}
