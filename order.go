package symexpr

import "sort"

// orderRank buckets an expression into the three canonical-order tiers:
// constants, then variables, then everything else.
func orderRank(e Expr) int {
	switch e.(type) {
	case *ConstExpr:
		return 0
	case *VarExpr, *OpaqueVarExpr:
		return 1
	default:
		return 2
	}
}

func varNameID(e Expr) (string, VarID) {
	switch t := e.(type) {
	case *VarExpr:
		return t.Name, t.ID
	case *OpaqueVarExpr:
		return t.Inner.Name, t.Inner.ID
	default:
		return "", 0
	}
}

func kindSeed(e Expr) uint64 {
	switch e.(type) {
	case *posInfExpr:
		return seedPosInf
	case *negInfExpr:
		return seedNegInf
	case *unknownExpr:
		return seedUnknown
	case *NamedFnExpr:
		return seedNamedFn
	case *LookupExpr:
		return seedLookup
	case *SumExpr:
		return seedSum
	case *ProdExpr:
		return seedProd
	case *PowExpr:
		return seedPow
	case *IntDivExpr:
		return seedIntDiv
	case *ModExpr:
		return seedMod
	case *LogExpr:
		return seedLog
	case *FloorExpr:
		return seedFloor
	case *CeilExpr:
		return seedCeil
	case *AbsExpr:
		return seedAbs
	case *IfThenElseExpr:
		return seedIfThenElse
	case *BigSumExpr:
		return seedBigSum
	default:
		return 0
	}
}

// less implements the canonical total order: constants first (by value);
// then variables, lexicographically by name then by id; then every other
// kind by (per-kind seed, digest). It is a total order over simplified
// expressions: ties only happen between structurally equal terms, which
// Equal then confirms.
func less(a, b Expr) bool {
	ra, rb := orderRank(a), orderRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		ac, bc := a.(*ConstExpr), b.(*ConstExpr)
		return ac.Value.Cmp(bc.Value) < 0
	case 1:
		an, aid := varNameID(a)
		bn, bid := varNameID(b)
		if an != bn {
			return an < bn
		}
		return aid < bid
	default:
		sa, sb := kindSeed(a), kindSeed(b)
		if sa != sb {
			return sa < sb
		}
		return Digest(a) < Digest(b)
	}
}

// sortExprs sorts a slice of expressions in place by the canonical order.
func sortExprs(es []Expr) {
	sort.SliceStable(es, func(i, j int) bool { return less(es[i], es[j]) })
}
