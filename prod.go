package symexpr

import "math/big"

type baseBucket struct {
	base Expr
	exps []Expr
}

// Mul builds a commutative, associative product: absorb a zero factor,
// flatten nested products, merge constants, merge equal bases (x^a * x^b ->
// x^(a+b)), distribute over a single Sum factor only when every other
// factor is constant, and sort into canonical order.
func Mul(factors ...Expr) Expr {
	var flat []Expr
	constProd := big.NewInt(1)

	for _, f := range factors {
		switch v := f.(type) {
		case *ProdExpr:
			flat = append(flat, v.Factors...)
		case *ConstExpr:
			constProd.Mul(constProd, v.Value)
		default:
			flat = append(flat, f)
		}
	}
	if constProd.Sign() == 0 {
		return ConstInt(0)
	}

	var buckets []baseBucket
	index := map[uint64][]int{}
	for _, f := range flat {
		base, exp := f, Expr(ConstInt(1))
		if p, ok := f.(*PowExpr); ok {
			base, exp = p.Base, p.Exponent
		}
		d := Digest(base)
		merged := false
		for _, bi := range index[d] {
			if Equal(buckets[bi].base, base) {
				buckets[bi].exps = append(buckets[bi].exps, exp)
				merged = true
				break
			}
		}
		if !merged {
			index[d] = append(index[d], len(buckets))
			buckets = append(buckets, baseBucket{base: base, exps: []Expr{exp}})
		}
	}

	var out []Expr
	for _, b := range buckets {
		var newExp Expr
		if len(b.exps) == 1 {
			newExp = b.exps[0]
		} else {
			newExp = Add(b.exps...)
		}
		p := Pow(b.base, newExp)
		if c, ok := p.(*ConstExpr); ok {
			if c.Value.Sign() == 0 {
				return ConstInt(0)
			}
			constProd.Mul(constProd, c.Value)
			continue
		}
		out = append(out, p)
	}

	// Distribute only when the single remaining non-constant factor is a
	// Sum and nothing else non-constant survives.
	if len(out) == 1 {
		if sum, ok := out[0].(*SumExpr); ok && constProd.Cmp(big.NewInt(1)) != 0 {
			scaled := make([]Expr, len(sum.Terms))
			for i, t := range sum.Terms {
				scaled[i] = Mul(Const(constProd), t)
			}
			return Add(scaled...)
		}
	}

	if constProd.Cmp(big.NewInt(1)) != 0 {
		out = append(out, Const(constProd))
	}
	if len(out) == 0 {
		return ConstInt(1)
	}
	if len(out) == 1 {
		return out[0]
	}

	sortExprs(out)
	return &ProdExpr{Factors: out}
}

// OrdDiv is ordinal division a /^ b, modeled as a * b^(-1).
func OrdDiv(a, b Expr) Expr { return Mul(a, Pow(b, ConstInt(-1))) }
