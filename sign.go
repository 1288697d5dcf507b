package symexpr

// Sign is the three-valued sign lattice used for derived-sign propagation.
// Unknown is the top element: it subsumes both Positive and Negative and
// is the safe default whenever a rule can't decide.
type Sign int

const (
	SignUnknown Sign = iota
	SignPositive
	SignNegative
)

func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "positive"
	case SignNegative:
		return "negative"
	default:
		return "unknown"
	}
}

func (s Sign) negate() Sign {
	switch s {
	case SignPositive:
		return SignNegative
	case SignNegative:
		return SignPositive
	default:
		return SignUnknown
	}
}

// xor combines two non-zero factor signs the way Prod does: same sign is
// Positive, differing signs is Negative, and Unknown is absorbing.
func (s Sign) xor(o Sign) Sign {
	if s == SignUnknown || o == SignUnknown {
		return SignUnknown
	}
	if s == o {
		return SignPositive
	}
	return SignNegative
}

// SignOf returns the derived sign of e by case-wise inspection. It never
// panics and never fails: an undecidable case is SignUnknown.
func SignOf(e Expr) Sign {
	switch t := e.(type) {
	case *ConstExpr:
		switch t.Value.Sign() {
		case 1:
			return SignPositive
		case -1:
			return SignNegative
		default:
			return SignUnknown // zero is neither positive nor negative
		}
	case *posInfExpr:
		return SignPositive
	case *negInfExpr:
		return SignNegative
	case *VarExpr:
		return varSign(t)
	case *OpaqueVarExpr:
		return varSign(t.Inner)
	case *SumExpr:
		s := SignOf(t.Terms[0])
		for _, term := range t.Terms[1:] {
			if SignOf(term) != s {
				return SignUnknown
			}
		}
		return s
	case *ProdExpr:
		s := SignPositive
		for _, f := range t.Factors {
			fs := SignOf(f)
			if fs == SignUnknown {
				return SignUnknown
			}
			s = s.xor(fs)
		}
		return s
	case *PowExpr:
		if n, ok := t.Exponent.(*ConstExpr); ok && n.Value.Sign() > 0 {
			if isEven(n.Value) {
				return SignPositive
			}
			return SignOf(t.Base)
		}
		// Kept conservatively Unknown even though a positive base raised
		// to an unknown-sign exponent is positive in practice.
		return SignUnknown
	case *ModExpr:
		// Result sign follows the divisor (the remainder may still be zero,
		// as with a Var whose range starts at 0); a provable multiple is
		// exactly zero, which is neither sign.
		if MultipleOf(t.Dividend, t.Divisor) {
			return SignUnknown
		}
		return SignOf(t.Divisor)
	case *AbsExpr:
		return SignPositive
	case *FloorExpr, *CeilExpr:
		return SignUnknown
	case *IfThenElseExpr:
		ts, es := SignOf(t.Then), SignOf(t.Else)
		if ts == es {
			return ts
		}
		return SignUnknown
	default:
		return SignUnknown
	}
}

func varSign(v *VarExpr) Sign {
	if v.Range == nil {
		return SignUnknown
	}
	min := v.Range.Min()
	if c, ok := min.(*ConstExpr); ok && c.Value.Sign() >= 0 && !isVarZero(v) {
		return SignPositive
	}
	max := v.Range.Max()
	if c, ok := max.(*ConstExpr); ok && c.Value.Sign() <= 0 {
		return SignNegative
	}
	return SignUnknown
}

// isVarZero reports whether v's range pins it exactly at zero, the one case
// where range.min >= 0 does not imply Positive.
func isVarZero(v *VarExpr) bool {
	min, minOK := v.Range.Min().(*ConstExpr)
	max, maxOK := v.Range.Max().(*ConstExpr)
	return minOK && maxOK && min.Value.Sign() == 0 && max.Value.Sign() == 0
}

// MightBeNegative is the sound, conservative complement of SignOf: it
// returns true unless the sign is provably non-negative.
func MightBeNegative(e Expr) bool {
	switch SignOf(e) {
	case SignPositive:
		return false
	default:
		return true
	}
}
