package symexpr

import "math/big"

// factorExp is one base raised to a constant integer exponent, as
// decomposed out of a Prod/Pow/atom by decomposeFactors.
type factorExp struct {
	base Expr
	exp  *big.Int
}

// decomposeFactors splits e into its constant coefficient and the
// remaining symbolic factors, each paired with its exponent when that
// exponent is itself a constant integer (an exponent left symbolic, e.g.
// x^v for a variable v, is kept as its own factor with an implicit
// exponent of 1, so it only matches another occurrence of the exact same
// Pow).
func decomposeFactors(e Expr) (*big.Int, []factorExp) {
	coef := big.NewInt(1)
	var raw []Expr
	if p, ok := e.(*ProdExpr); ok {
		raw = p.Factors
	} else {
		raw = []Expr{e}
	}
	var out []factorExp
	for _, f := range raw {
		if c, ok := f.(*ConstExpr); ok {
			coef.Mul(coef, c.Value)
			continue
		}
		base, exp := f, bigOne
		if p, ok := f.(*PowExpr); ok {
			if ec, ok := p.Exponent.(*ConstExpr); ok {
				base, exp = p.Base, ec.Value
			}
		}
		out = append(out, factorExp{base: base, exp: new(big.Int).Set(exp)})
	}
	return coef, out
}

// Gcd returns the largest expression that both a and b can be shown to
// contain as a product factor: the gcd of their constant coefficients
// times the product of their shared symbolic factors (each raised to the
// smaller of the two exponents). It is a sound under-approximation, not a
// complete gcd: factors it can't match structurally are simply left out.
func Gcd(a, b Expr) Expr {
	if ac, ok := a.(*ConstExpr); ok {
		if bc, ok := b.(*ConstExpr); ok {
			return Const(gcdInt(ac.Value, bc.Value))
		}
	}
	aCoef, aFactors := decomposeFactors(a)
	bCoef, bFactors := decomposeFactors(b)
	g := gcdInt(aCoef, bCoef)

	var common []Expr
	usedB := make([]bool, len(bFactors))
	for _, af := range aFactors {
		for j, bf := range bFactors {
			if usedB[j] {
				continue
			}
			if !Equal(af.base, bf.base) {
				continue
			}
			m := af.exp
			if bf.exp.Cmp(m) < 0 {
				m = bf.exp
			}
			if m.Sign() > 0 {
				common = append(common, Pow(af.base, Const(m)))
			}
			usedB[j] = true
			break
		}
	}

	parts := []Expr{}
	if g.Cmp(bigOne) != 0 {
		parts = append(parts, Const(g))
	}
	parts = append(parts, common...)
	if len(parts) == 0 {
		return ConstInt(1)
	}
	return Mul(parts...)
}

// MultipleOf reports whether b evenly divides a, returning true only when
// that's provable: constant a and b reduce to the integer check directly;
// otherwise every symbolic factor of b (with a positive exponent) must
// appear in a with at least as large an exponent, and a's constant
// coefficient must be a multiple of b's. Anything it can't show this way
// it soundly refuses rather than guesses at.
func MultipleOf(a, b Expr) bool {
	if Equal(a, b) {
		return true
	}
	if bc, ok := b.(*ConstExpr); ok {
		if bc.Value.Sign() == 0 {
			return false
		}
		coef, _ := decomposeFactors(a)
		return new(big.Int).Mod(absBig(coef), absBig(bc.Value)).Sign() == 0
	}
	bCoef, bFactors := decomposeFactors(b)
	aCoef, aFactors := decomposeFactors(a)
	if bCoef.Sign() != 0 && new(big.Int).Mod(absBig(aCoef), absBig(bCoef)).Sign() != 0 {
		return false
	}
	for _, bf := range bFactors {
		if bf.exp.Sign() <= 0 {
			continue
		}
		found := false
		for _, af := range aFactors {
			if Equal(af.base, bf.base) && af.exp.Cmp(bf.exp) >= 0 {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsSmaller decides a < b, returning nil when it can't be decided either
// way. It tries, in order: direct
// numeric evaluation of b - a; comparing Max(a) against Min(b); a small
// catalogue of recognized syntactic patterns; and finally freezing any
// variables shared between a and b behind OpaqueVar, so that Max(a) and
// Min(b) keep each shared variable itself rather than its range ends and
// it can cancel, and reporting true when Min(b) - Max(a) then evaluates to
// a positive constant.
func IsSmaller(a, b Expr) *bool {
	if r := compareBound(a, b); r != nil {
		return r
	}
	if r := patternIsSmaller(a, b); r != nil {
		return r
	}
	shared := sharedVarIDs(a, b)
	if len(shared) == 0 {
		return nil
	}
	sigma := make(map[VarID]Expr, len(shared))
	for id, v := range shared {
		sigma[id] = opaque(v)
	}
	a2, b2 := substitute(a, sigma), substitute(b, sigma)
	if Equal(a2, a) && Equal(b2, b) {
		return nil
	}
	if r := compareBound(Max(a2), Min(b2)); r != nil && *r {
		return r
	}
	return nil
}

// compareBound tries the numeric-evaluation and interval-bound checks of
// IsSmaller without the pattern catalogue or variable freezing.
func compareBound(a, b Expr) *bool {
	t, f := true, false
	if v, err := Eval(Add(b, Neg(a))); err == nil {
		if v.Sign() > 0 {
			return &t
		}
		return &f
	}
	amax, amaxOK := Eval(Max(a))
	bmin, bminOK := Eval(Min(b))
	if amaxOK == nil && bminOK == nil && amax.Cmp(bmin) < 0 {
		return &t
	}
	return nil
}

// sharedVarIDs returns every VarExpr referenced by both a and b, keyed by
// ID.
func sharedVarIDs(a, b Expr) map[VarID]*VarExpr {
	inA := map[VarID]*VarExpr{}
	for _, v := range VarList(a) {
		inA[v.ID] = v
	}
	shared := map[VarID]*VarExpr{}
	for _, v := range VarList(b) {
		if sv, ok := inA[v.ID]; ok {
			shared[v.ID] = sv
		}
	}
	return shared
}

// patternIsSmaller recognizes a small catalogue of syntactic shapes that
// come up constantly in loop bound reasoning: v/k < v for a constant k with
// |k| > 1, and Mod(_, v) < v, both only when v's lower bound is at least 1.
func patternIsSmaller(a, b Expr) *bool {
	t := true
	if id, ok := a.(*IntDivExpr); ok {
		if kc, ok := id.Den.(*ConstExpr); ok && kc.Value.CmpAbs(bigOne) > 0 {
			if Equal(id.Num, b) && atLeastOne(b) {
				return &t
			}
		}
	}
	if m, ok := a.(*ModExpr); ok {
		if Equal(m.Divisor, b) && atLeastOne(b) {
			return &t
		}
	}
	return nil
}

// atLeastOne reports whether Min(e) evaluates to 1 or more.
func atLeastOne(e Expr) bool {
	m, err := Eval(Min(e))
	return err == nil && m.Cmp(bigOne) >= 0
}
