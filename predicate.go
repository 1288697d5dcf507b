package symexpr

// CompareOp is the comparison operator of a Predicate.
type CompareOp uint8

const (
	OpLt CompareOp = iota
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
)

func (op CompareOp) String() string {
	switch op {
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	default:
		return "?"
	}
}

func (op CompareOp) negate() CompareOp {
	switch op {
	case OpLt:
		return OpGe
	case OpLe:
		return OpGt
	case OpGt:
		return OpLe
	case OpGe:
		return OpLt
	case OpEq:
		return OpNe
	default:
		return OpEq
	}
}

// Predicate is an immutable comparison atom (lhs, rhs, op). It is not an
// Expr: evaluating it is only decidable once both sides are constants,
// which is checked by the IfThenElse smart constructor, not here.
type Predicate struct {
	Lhs, Rhs Expr
	Op       CompareOp
}

// NewPredicate builds a Predicate. Unlike Expr smart constructors this does
// not simplify lhs/rhs itself; callers are expected to pass already
// simplified operands (Simplify's rebuild and Predicate.substitute do).
func NewPredicate(lhs Expr, op CompareOp, rhs Expr) *Predicate {
	return &Predicate{Lhs: lhs, Op: op, Rhs: rhs}
}

func (p *Predicate) String() string {
	return p.Lhs.String() + " " + p.Op.String() + " " + p.Rhs.String()
}

// evalConst decides p when both sides evaluate to constants; it returns
// (result, true) when decidable.
func (p *Predicate) evalConst() (bool, bool) {
	l, errL := Eval(p.Lhs)
	r, errR := Eval(p.Rhs)
	if errL != nil || errR != nil {
		return false, false
	}
	c := l.Cmp(r)
	switch p.Op {
	case OpLt:
		return c < 0, true
	case OpLe:
		return c <= 0, true
	case OpGt:
		return c > 0, true
	case OpGe:
		return c >= 0, true
	case OpEq:
		return c == 0, true
	case OpNe:
		return c != 0, true
	default:
		return false, false
	}
}

func (p *Predicate) substitute(sigma map[VarID]Expr) *Predicate {
	return NewPredicate(substitute(p.Lhs, sigma), p.Op, substitute(p.Rhs, sigma))
}

func (p *Predicate) digest() uint64 {
	return seedPredicate ^ uint64(p.Op) ^ Digest(p.Lhs) ^ ^Digest(p.Rhs)
}
