// Package symexpr is a normalizing symbolic arithmetic expression kernel for
// integer and rational algebra over named variables with optional value
// ranges. It is meant to sit underneath a polyhedral / loop-optimization
// compiler that reasons about index expressions, loop bounds, divisibility,
// modular arithmetic, and ordering relations between symbolic quantities.
//
// Every expression is built through a smart constructor (Add, Mul, Pow,
// IntDiv, ...) that simplifies locally and returns an already-normalized
// tree. The concrete node types are exported, so a caller can also assemble
// a tree directly as struct literals; such a tree skips the smart
// constructors, and Simplify re-normalizes it. Two expressions are equal
// iff their normal forms are structurally identical (see Equal).
//
// The kernel does no floating-point algebra and no SAT/SMT solving: integer
// evaluation either succeeds exactly or fails with ErrNotEvaluable (or with
// ErrArithmeticDomain for a zero divisor, an out-of-range lookup index or a
// logarithm outside its domain), and
// range/ordering reasoning (IsSmaller, MightBeNegative) is a sound
// best-effort over-approximation, never a complete decision procedure.
package symexpr

// Kind tags the variant of an Expr. It exists mainly to give the canonical
// ordering and the digest a stable per-variant seed; callers should use a
// type switch rather than branch on Kind directly.
type Kind uint8

const (
	KindConst Kind = iota
	KindPosInf
	KindNegInf
	KindUnknown
	KindVar
	KindOpaqueVar
	KindNamedFn
	KindLookup
	KindSum
	KindProd
	KindPow
	KindIntDiv
	KindMod
	KindLog
	KindFloor
	KindCeil
	KindAbs
	KindIfThenElse
	KindBigSum
)

var kindNames = [...]string{
	KindConst:      "Const",
	KindPosInf:     "PosInf",
	KindNegInf:     "NegInf",
	KindUnknown:    "Unknown",
	KindVar:        "Var",
	KindOpaqueVar:  "OpaqueVar",
	KindNamedFn:    "NamedFn",
	KindLookup:     "Lookup",
	KindSum:        "Sum",
	KindProd:       "Prod",
	KindPow:        "Pow",
	KindIntDiv:     "IntDiv",
	KindMod:        "Mod",
	KindLog:        "Log",
	KindFloor:      "Floor",
	KindCeil:       "Ceil",
	KindAbs:        "Abs",
	KindIfThenElse: "IfThenElse",
	KindBigSum:     "BigSum",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
