package symexpr

import "math/big"

// splitCoefficient factors e into (coefficient, body) so that like terms of
// a Sum can be combined regardless of how their constant prefix is
// spelled: 3*x and x have the same body x with coefficients 3 and 1.
func splitCoefficient(e Expr) (*big.Int, Expr) {
	if p, ok := e.(*ProdExpr); ok {
		if c, ok := p.Factors[0].(*ConstExpr); ok {
			rest := p.Factors[1:]
			if len(rest) == 1 {
				return new(big.Int).Set(c.Value), rest[0]
			}
			cp := make([]Expr, len(rest))
			copy(cp, rest)
			return new(big.Int).Set(c.Value), &ProdExpr{Factors: cp}
		}
	}
	return big.NewInt(1), e
}

func mulConstBody(coef *big.Int, body Expr) Expr {
	if coef.Cmp(big.NewInt(1)) == 0 {
		return body
	}
	return Mul(Const(coef), body)
}

type termBucket struct {
	coef *big.Int
	body Expr
}

// Add builds a commutative, associative sum: flatten nested sums, merge
// constants (including ones surfaced by flattening), combine like terms by
// coefficient, elide a zero constant, and sort into canonical order.
func Add(terms ...Expr) Expr {
	var flat []Expr
	constSum := big.NewInt(0)

	for _, t := range terms {
		switch v := t.(type) {
		case *SumExpr:
			for _, inner := range v.Terms {
				if c, ok := inner.(*ConstExpr); ok {
					constSum.Add(constSum, c.Value)
				} else {
					flat = append(flat, inner)
				}
			}
		case *ConstExpr:
			constSum.Add(constSum, v.Value)
		default:
			flat = append(flat, t)
		}
	}

	var buckets []termBucket
	index := map[uint64][]int{}
	for _, t := range flat {
		coef, body := splitCoefficient(t)
		d := Digest(body)
		merged := false
		for _, bi := range index[d] {
			if Equal(buckets[bi].body, body) {
				buckets[bi].coef.Add(buckets[bi].coef, coef)
				merged = true
				break
			}
		}
		if !merged {
			index[d] = append(index[d], len(buckets))
			buckets = append(buckets, termBucket{coef: new(big.Int).Set(coef), body: body})
		}
	}

	var out []Expr
	for _, b := range buckets {
		if b.coef.Sign() == 0 {
			continue
		}
		out = append(out, mulConstBody(b.coef, b.body))
	}

	if constSum.Sign() != 0 || len(out) == 0 {
		out = append(out, Const(constSum))
	}
	if len(out) == 1 {
		return out[0]
	}

	sortExprs(out)
	return &SumExpr{Terms: out}
}

// Neg returns -e, spelled as the product (-1)*e.
func Neg(e Expr) Expr { return Mul(ConstInt(-1), e) }

// SubExpr returns a - b.
func SubExpr(a, b Expr) Expr { return Add(a, Neg(b)) }
