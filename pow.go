package symexpr

import "math/big"

var bigOne = big.NewInt(1)

// Pow builds Base^Exponent: x^0=1 (including 0^0=1), x^1=x, 1^x=1, 0^x=0
// for positive x, (x^a)^b=x^(a*b) when a*b is an integer, constant folding
// when both sides are constants and the result is integral, and
// (a*b)^n=a^n*b^n for integer n, kept as a product of powers. A negative
// exponent is retained symbolically as a reciprocal.
func Pow(base, exponent Expr) Expr {
	if ec, ok := exponent.(*ConstExpr); ok {
		switch {
		case ec.Value.Sign() == 0:
			return ConstInt(1)
		case ec.Value.Cmp(bigOne) == 0:
			return base
		}
	}

	if bc, ok := base.(*ConstExpr); ok {
		if bc.Value.Cmp(bigOne) == 0 {
			return ConstInt(1)
		}
		if bc.Value.Sign() == 0 {
			if ec, ok := exponent.(*ConstExpr); ok && ec.Value.Sign() > 0 {
				return ConstInt(0)
			}
		}
	}

	// (x^a)^b = x^(a*b) when both exponents are constant integers.
	if p, ok := base.(*PowExpr); ok {
		if ae, aok := p.Exponent.(*ConstExpr); aok {
			if be, bok := exponent.(*ConstExpr); bok {
				return Pow(p.Base, Const(new(big.Int).Mul(ae.Value, be.Value)))
			}
		}
	}

	// Constant folding, only when the result is integral.
	if bc, bok := base.(*ConstExpr); bok {
		if ec, eok := exponent.(*ConstExpr); eok {
			switch {
			case ec.Value.Sign() > 0:
				return Const(new(big.Int).Exp(bc.Value, ec.Value, nil))
			case ec.Value.Sign() < 0:
				absExp := new(big.Int).Neg(ec.Value)
				powVal := new(big.Int).Exp(bc.Value, absExp, nil)
				if powVal.CmpAbs(bigOne) == 0 {
					return Const(powVal) // reciprocal of +-1 is itself
				}
			}
		}
	}

	// (a*b)^n = a^n * b^n for a constant integer exponent, kept as a
	// product of powers rather than re-expanded.
	if pr, ok := base.(*ProdExpr); ok {
		if ec, eok := exponent.(*ConstExpr); eok {
			parts := make([]Expr, len(pr.Factors))
			for i, f := range pr.Factors {
				parts[i] = Pow(f, ec)
			}
			return Mul(parts...)
		}
	}

	return &PowExpr{Base: base, Exponent: exponent}
}
