package symexpr

import "math/big"

// Expr is the sealed tagged union of every expression variant. The
// unexported isExpr method keeps any type outside this package from
// implementing Expr. The concrete node structs are exported, though, so a
// caller can still build one directly as a struct literal (for example
// &SumExpr{...}); such a value bypasses the smart constructors and is in
// normal form only once passed through Simplify.
type Expr interface {
	Kind() Kind
	String() string
	isExpr()
}

// base is embedded in every concrete expression type. It exists purely to
// satisfy the sealed isExpr() marker; a "simplified" tag is not tracked as
// a separate runtime flag (see DESIGN.md): values returned by the smart
// constructors are simplified, and a node built directly as a struct
// literal is not marked in any way.
type base struct{}

func (base) isExpr() {}

// ---------- Const ----------

// ConstExpr is a machine-width (in practice, arbitrary-precision) integer
// literal.
type ConstExpr struct {
	base
	Value *big.Int
}

func (*ConstExpr) Kind() Kind { return KindConst }

// Const builds an integer literal from a big.Int. It never needs to
// simplify anything and is always already in normal form.
func Const(n *big.Int) Expr { return &ConstExpr{Value: new(big.Int).Set(n)} }

// ConstInt builds an integer literal from a machine int64, for callers who
// don't need arbitrary precision.
func ConstInt(n int64) Expr { return &ConstExpr{Value: big.NewInt(n)} }

// ---------- Infinities & Unknown ----------

type posInfExpr struct{ base }
type negInfExpr struct{ base }
type unknownExpr struct{ base }

func (*posInfExpr) Kind() Kind  { return KindPosInf }
func (*negInfExpr) Kind() Kind  { return KindNegInf }
func (*unknownExpr) Kind() Kind { return KindUnknown }

var (
	// ExprPosInf is the distinguished +infinity singleton.
	ExprPosInf Expr = &posInfExpr{}
	// ExprNegInf is the distinguished -infinity singleton.
	ExprNegInf Expr = &negInfExpr{}
	// ExprUnknown is the distinguished "nothing is known" singleton,
	// returned whenever a decision procedure or range computation must
	// give up soundly rather than guess.
	ExprUnknown Expr = &unknownExpr{}
)

// ---------- Var ----------

// VarExpr is a symbolic unknown. Its identity is ID alone; Name is
// decorative and Range is an immutable value attached at construction
// time ("mutating" a range means producing a new Var with the same id,
// via WithRange below).
type VarExpr struct {
	base
	ID    VarID
	Name  string
	Range Range
}

func (*VarExpr) Kind() Kind { return KindVar }

// Var builds a fresh symbolic variable. With no range given it defaults to
// UnknownRange.
func Var(name string, rng ...Range) Expr {
	r := UnknownRange
	if len(rng) > 0 && rng[0] != nil {
		r = rng[0]
	}
	return simplifyVar(&VarExpr{ID: nextVarID(), Name: name, Range: r})
}

// PosVar builds a variable ranged over [0, +inf).
func PosVar(name string) Expr { return Var(name, StartFrom(ConstInt(0))) }

// SizeVar builds a variable ranged over [1, +inf), the usual range for a
// loop trip count or array dimension.
func SizeVar(name string) Expr { return Var(name, StartFrom(ConstInt(1))) }

// WithRange returns a Var with the same id and name as v but a new range,
// the only sanctioned way to "mutate" a range in place.
func WithRange(v Expr, r Range) Expr {
	vx, ok := v.(*VarExpr)
	if !ok {
		return v
	}
	return simplifyVar(&VarExpr{ID: vx.ID, Name: vx.Name, Range: r})
}

// ---------- OpaqueVar ----------

// OpaqueVarExpr wraps a Var so that its own min/max collapse to itself; it
// is how IsSmaller freezes a variable shared between both sides of a
// comparison.
type OpaqueVarExpr struct {
	base
	Inner *VarExpr
}

func (*OpaqueVarExpr) Kind() Kind { return KindOpaqueVar }

func opaque(v *VarExpr) Expr { return &OpaqueVarExpr{Inner: v} }

// ---------- NamedFn ----------

// NamedFnExpr is a symbolic uninterpreted function value: the kernel knows
// nothing about it beyond the range its caller attaches.
type NamedFnExpr struct {
	base
	Name  string
	Range Range
}

func (*NamedFnExpr) Kind() Kind { return KindNamedFn }

// NamedFn builds an uninterpreted function value with the given range
// (UnknownRange if rng is omitted).
func NamedFn(name string, rng ...Range) Expr {
	r := UnknownRange
	if len(rng) > 0 && rng[0] != nil {
		r = rng[0]
	}
	return &NamedFnExpr{Name: name, Range: r}
}

// ---------- Lookup ----------

// LookupExpr is an indexed read into a literal table of expressions. id
// disambiguates two Lookups over structurally equal tables and indices
// that nonetheless denote different external arrays.
type LookupExpr struct {
	base
	Table []Expr
	Index Expr
	ID    int64
}

func (*LookupExpr) Kind() Kind { return KindLookup }

// Lookup builds a table read, constant-folding it away when index is a
// literal in range.
func Lookup(table []Expr, index Expr, id int64) Expr {
	if c, ok := index.(*ConstExpr); ok && c.Value.IsInt64() {
		i := c.Value.Int64()
		if i >= 0 && i < int64(len(table)) {
			return table[i]
		}
	}
	cp := make([]Expr, len(table))
	copy(cp, table)
	return &LookupExpr{Table: cp, Index: index, ID: id}
}

// ---------- Sum / Prod ----------

// SumExpr is a commutative, associative sum with at least two terms,
// sorted by the canonical order.
type SumExpr struct {
	base
	Terms []Expr
}

func (*SumExpr) Kind() Kind { return KindSum }

// ProdExpr is a commutative, associative product with at least two
// factors, sorted by the canonical order.
type ProdExpr struct {
	base
	Factors []Expr
}

func (*ProdExpr) Kind() Kind { return KindProd }

// ---------- Pow ----------

// PowExpr is Base raised to Exponent. A negative Exponent represents a
// reciprocal; Pow(_, Const(-1)) is how the kernel represents "divide by an
// expression" inside a Prod.
type PowExpr struct {
	base
	Base, Exponent Expr
}

func (*PowExpr) Kind() Kind { return KindPow }

// ---------- IntDiv / Mod ----------

// IntDivExpr is floor division: defined only for an integer result and a
// non-zero denominator.
type IntDivExpr struct {
	base
	Num, Den Expr
}

func (*IntDivExpr) Kind() Kind { return KindIntDiv }

// ModExpr is the remainder complementary to IntDiv's floor division:
// sign(result) == sign(Divisor) (or zero), and
// IntDiv(a,b)*b + Mod(a,b) == a always.
type ModExpr struct {
	base
	Dividend, Divisor Expr
}

func (*ModExpr) Kind() Kind { return KindMod }

// ---------- Log ----------

// LogExpr is the logarithm of X in the given Base.
type LogExpr struct {
	base
	Base, X Expr
}

func (*LogExpr) Kind() Kind { return KindLog }

// ---------- Floor / Ceil / Abs ----------

type FloorExpr struct {
	base
	E Expr
}
type CeilExpr struct {
	base
	E Expr
}
type AbsExpr struct {
	base
	E Expr
}

func (*FloorExpr) Kind() Kind { return KindFloor }
func (*CeilExpr) Kind() Kind  { return KindCeil }
func (*AbsExpr) Kind() Kind   { return KindAbs }

// ---------- IfThenElse ----------

// IfThenElseExpr is a conditional expression gated by a Predicate.
type IfThenElseExpr struct {
	base
	Pred       *Predicate
	Then, Else Expr
}

func (*IfThenElseExpr) Kind() Kind { return KindIfThenElse }

// ---------- BigSum ----------

// BigSumExpr is the symbolic closed form of Σ_{i=From}^{UpTo} Body(i),
// inclusive on both ends. Body is stored as an ordinary Expr mentioning the
// bound variable BoundVar; evaluating or substituting into a BigSum
// replaces BoundVar, never the outer variable of the same name if one
// happens to be in scope (BoundVar is a fresh Var, never reused).
type BigSumExpr struct {
	base
	From, UpTo Expr
	BoundVar   *VarExpr
	Body       Expr
}

func (*BigSumExpr) Kind() Kind { return KindBigSum }
