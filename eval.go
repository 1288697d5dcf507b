package symexpr

import "math/big"

// Eval reduces e to a concrete integer, or reports why it couldn't: a free
// variable, an infinity, or Unknown makes it ErrNotEvaluable; a genuine
// arithmetic fault (division by zero surviving to evaluation time)
// surfaces as ErrArithmeticDomain. Internal callers that merely want to
// probe whether an expression happens to be constant (Min/Max bound
// comparison, predicate folding) should treat ErrNotEvaluable as an
// ordinary "no" rather than a failure worth logging.
func Eval(e Expr) (*big.Int, error) {
	switch t := e.(type) {
	case *ConstExpr:
		return new(big.Int).Set(t.Value), nil
	case *SumExpr:
		sum := big.NewInt(0)
		for _, term := range t.Terms {
			v, err := Eval(term)
			if err != nil {
				return nil, err
			}
			sum.Add(sum, v)
		}
		return sum, nil
	case *ProdExpr:
		prod := big.NewInt(1)
		for _, f := range t.Factors {
			v, err := Eval(f)
			if err != nil {
				return nil, err
			}
			prod.Mul(prod, v)
		}
		return prod, nil
	case *PowExpr:
		base, err := Eval(t.Base)
		if err != nil {
			return nil, err
		}
		exp, err := Eval(t.Exponent)
		if err != nil {
			return nil, err
		}
		if exp.Sign() < 0 {
			return nil, notEvaluableErrorf("Eval: negative exponent %s is not an integer", exp)
		}
		return new(big.Int).Exp(base, exp, nil), nil
	case *IntDivExpr:
		n, err := Eval(t.Num)
		if err != nil {
			return nil, err
		}
		d, err := Eval(t.Den)
		if err != nil {
			return nil, err
		}
		if d.Sign() == 0 {
			return nil, domainErrorf("Eval: division by zero")
		}
		return floorDiv(n, d), nil
	case *ModExpr:
		n, err := Eval(t.Dividend)
		if err != nil {
			return nil, err
		}
		d, err := Eval(t.Divisor)
		if err != nil {
			return nil, err
		}
		if d.Sign() == 0 {
			return nil, domainErrorf("Eval: modulo by zero")
		}
		return floorMod(n, d), nil
	case *LogExpr:
		base, err := Eval(t.Base)
		if err != nil {
			return nil, err
		}
		x, err := Eval(t.X)
		if err != nil {
			return nil, err
		}
		if base.Cmp(bigOne) <= 0 || x.Sign() <= 0 {
			return nil, domainErrorf("Eval: log base %s of %s out of domain", base, x)
		}
		n, exact := exactLog(base, x)
		if !exact {
			return nil, notEvaluableErrorf("Eval: log base %s of %s is not an exact integer", base, x)
		}
		return big.NewInt(n), nil
	case *FloorExpr:
		return Eval(t.E)
	case *CeilExpr:
		return Eval(t.E)
	case *AbsExpr:
		v, err := Eval(t.E)
		if err != nil {
			return nil, err
		}
		return absBig(v), nil
	case *IfThenElseExpr:
		v, ok := t.Pred.evalConst()
		if !ok {
			return nil, notEvaluableErrorf("Eval: predicate %s is not decidable", t.Pred)
		}
		if v {
			return Eval(t.Then)
		}
		return Eval(t.Else)
	case *LookupExpr:
		idx, err := Eval(t.Index)
		if err != nil {
			return nil, err
		}
		if !idx.IsInt64() || idx.Sign() < 0 || idx.Int64() >= int64(len(t.Table)) {
			return nil, domainErrorf("Eval: lookup index %s out of range", idx)
		}
		return Eval(t.Table[idx.Int64()])
	case *BigSumExpr:
		from, err := Eval(t.From)
		if err != nil {
			return nil, err
		}
		upTo, err := Eval(t.UpTo)
		if err != nil {
			return nil, err
		}
		sum := big.NewInt(0)
		i := new(big.Int).Set(from)
		for i.Cmp(upTo) <= 0 {
			body := Substitute(t.Body, map[VarID]Expr{t.BoundVar.ID: Const(i)})
			v, err := Eval(body)
			if err != nil {
				return nil, err
			}
			sum.Add(sum, v)
			i = new(big.Int).Add(i, bigOne)
		}
		return sum, nil
	default:
		return nil, notEvaluableErrorf("Eval: %s is not a constant", e.String())
	}
}

// EvalDouble is Eval's floating-point counterpart, used where a bound
// comparison only needs an approximate ordering. It never introduces new
// evaluability: anything Eval can't reduce, this can't either.
func EvalDouble(e Expr) (float64, error) {
	v, err := Eval(e)
	if err != nil {
		return 0, err
	}
	f := new(big.Float).SetInt(v)
	out, _ := f.Float64()
	return out, nil
}
