package symexpr

// BigSum builds the closed-form (when one exists) or symbolic sum of
// body(i) for i ranging from "from" to "upTo" inclusive. body is evaluated
// once against a fresh bound variable, which keeps the result an ordinary
// Expr tree rather than a closure, so it stays comparable, digestible and
// substitutable like every other node: BigSum is always represented as
// data, never as code.
func BigSum(from, upTo Expr, body func(Expr) Expr) Expr {
	bv := &VarExpr{base: base{}, ID: nextVarID(), Name: "i", Range: UnknownRange}
	return bigSumOf(from, upTo, bv, body(bv))
}

// bigSumOf applies the closed-form rewrite rules directly to an
// already-built body expression over boundVar.
func bigSumOf(from, upTo Expr, boundVar *VarExpr, body Expr) Expr {
	if fc, fok := from.(*ConstExpr); fok {
		if uc, uok := upTo.(*ConstExpr); uok {
			if fc.Value.Cmp(uc.Value) > 0 {
				return ConstInt(0)
			}
			if fc.Value.Cmp(uc.Value) == 0 {
				return Substitute(body, map[VarID]Expr{boundVar.ID: from})
			}
		}
	}

	if !ContainsVar(body, boundVar.ID) {
		count := Add(Add(upTo, Neg(from)), ConstInt(1))
		return Mul(count, body)
	}

	if sum, ok := body.(*SumExpr); ok {
		parts := make([]Expr, len(sum.Terms))
		for i, term := range sum.Terms {
			parts[i] = bigSumOf(from, upTo, boundVar, term)
		}
		return Add(parts...)
	}

	if coef, rest := splitCoefficient(body); !Equal(rest, body) {
		return Mul(Const(coef), bigSumOf(from, upTo, boundVar, rest))
	}

	if v, ok := body.(*VarExpr); ok && v.ID == boundVar.ID {
		total := Add(from, upTo)
		count := Add(Add(upTo, Neg(from)), ConstInt(1))
		q, err := IntDiv(Mul(total, count), ConstInt(2))
		if err == nil {
			return q
		}
	}

	if ite, ok := body.(*IfThenElseExpr); ok {
		lowBody, highBody := ite.Then, ite.Else
		split, ok := arithRangeSplit(ite.Pred, boundVar)
		if !ok {
			// boundVar >= k or > k: the negated predicate holds on the low piece.
			lowBody, highBody = ite.Else, ite.Then
			split, ok = arithRangeSplit(NewPredicate(ite.Pred.Lhs, ite.Pred.Op.negate(), ite.Pred.Rhs), boundVar)
		}
		if ok {
			// Clamp the split point into [from-1, upTo] where IsSmaller can
			// decide it; otherwise it is used as is.
			lo := Add(from, ConstInt(-1))
			if r := IsSmaller(upTo, split); r != nil && *r {
				split = upTo
			}
			if r := IsSmaller(split, lo); r != nil && *r {
				split = lo
			}
			lowSum := bigSumOf(from, split, boundVar, lowBody)
			highSum := bigSumOf(Add(split, ConstInt(1)), upTo, boundVar, highBody)
			return Add(lowSum, highSum)
		}
	}

	return &BigSumExpr{From: from, UpTo: upTo, BoundVar: boundVar, Body: body}
}

// arithRangeSplit recognizes a predicate boundVar <= k or boundVar < k
// against a constant k (in either operand order, so k > boundVar counts
// too) and returns the split point: the largest value of boundVar for
// which the predicate holds (k, or k-1 for <). Other operators are not
// recognized here; bigSumOf handles >= and > by negating the predicate.
// A Predicate carries no range of its own, so the caller relates the split
// point to the [from, upTo] being summed over.
func arithRangeSplit(p *Predicate, boundVar *VarExpr) (split Expr, ok bool) {
	kExpr, flip := p.Rhs, false
	if vv, isVar := p.Lhs.(*VarExpr); !isVar || vv.ID != boundVar.ID {
		kExpr, flip = p.Lhs, true
		if vv, isVar := p.Rhs.(*VarExpr); !isVar || vv.ID != boundVar.ID {
			return nil, false
		}
	}
	k, isConst := kExpr.(*ConstExpr)
	if !isConst {
		return nil, false
	}
	op := p.Op
	if flip {
		op = flipCompareOp(op)
	}
	switch op {
	case OpLe:
		return k, true
	case OpLt:
		return Add(k, ConstInt(-1)), true
	default:
		return nil, false
	}
}

func flipCompareOp(op CompareOp) CompareOp {
	switch op {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGt:
		return OpLt
	case OpGe:
		return OpLe
	default:
		return op
	}
}
