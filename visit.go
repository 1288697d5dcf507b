package symexpr

// children returns the immediate sub-expressions of e, in evaluation order.
// It does not descend into a Var's Range.
func children(e Expr) []Expr {
	switch t := e.(type) {
	case *OpaqueVarExpr:
		return []Expr{t.Inner}
	case *LookupExpr:
		out := make([]Expr, 0, len(t.Table)+1)
		out = append(out, t.Index)
		out = append(out, t.Table...)
		return out
	case *SumExpr:
		return t.Terms
	case *ProdExpr:
		return t.Factors
	case *PowExpr:
		return []Expr{t.Base, t.Exponent}
	case *IntDivExpr:
		return []Expr{t.Num, t.Den}
	case *ModExpr:
		return []Expr{t.Dividend, t.Divisor}
	case *LogExpr:
		return []Expr{t.Base, t.X}
	case *FloorExpr:
		return []Expr{t.E}
	case *CeilExpr:
		return []Expr{t.E}
	case *AbsExpr:
		return []Expr{t.E}
	case *IfThenElseExpr:
		return []Expr{t.Pred.Lhs, t.Pred.Rhs, t.Then, t.Else}
	case *BigSumExpr:
		return []Expr{t.From, t.UpTo, t.Body}
	default:
		return nil
	}
}

// Visit folds over every node of e in pre-order, calling f once per node
// (not descending into a Var's Range).
func Visit(e Expr, f func(Expr)) {
	f(e)
	for _, c := range children(e) {
		Visit(c, f)
	}
}

// VisitUntil walks e in pre-order like Visit, but stops and returns true as
// soon as f returns true for some node.
func VisitUntil(e Expr, f func(Expr) bool) bool {
	if f(e) {
		return true
	}
	for _, c := range children(e) {
		if VisitUntil(c, f) {
			return true
		}
	}
	return false
}

// Contains reports whether needle occurs anywhere in haystack (including
// haystack itself), compared by Equal.
func Contains(haystack, needle Expr) bool {
	return VisitUntil(haystack, func(e Expr) bool { return Equal(e, needle) })
}

// ContainsVar reports whether e mentions the variable with the given id
// anywhere, including inside nested Var ranges (unlike Visit, this check is
// specifically about variable occurrence and does look at a Var's own
// Range bounds, since those bounds can themselves mention other variables
// relevant to a caller walking dependency order).
func ContainsVar(e Expr, id VarID) bool {
	found := false
	var walk func(Expr)
	walk = func(x Expr) {
		if found {
			return
		}
		if v, ok := x.(*VarExpr); ok {
			if v.ID == id {
				found = true
				return
			}
			walk(v.Range.Min())
			walk(v.Range.Max())
			return
		}
		for _, c := range children(x) {
			walk(c)
		}
	}
	walk(e)
	return found
}

// VarList returns every distinct Var occurring in e (by id), in order of
// first occurrence, not descending into Var.Range.
func VarList(e Expr) []*VarExpr {
	seen := map[VarID]bool{}
	var out []*VarExpr
	Visit(e, func(x Expr) {
		if v, ok := x.(*VarExpr); ok && !seen[v.ID] {
			seen[v.ID] = true
			out = append(out, v)
		}
		if v, ok := x.(*OpaqueVarExpr); ok && !seen[v.Inner.ID] {
			seen[v.Inner.ID] = true
			out = append(out, v.Inner)
		}
	})
	return out
}
