package symexpr

import (
	"encoding/binary"
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// Per-kind seeds. Each is the xxhash of the kind's own name, so two kernels
// built from this same source always agree on seeds without having to ship
// a magic-number table by hand.
var (
	seedConst      = xxhash.Sum64String("Const")
	seedPosInf     = xxhash.Sum64String("PosInf")
	seedNegInf     = xxhash.Sum64String("NegInf")
	seedUnknown    = xxhash.Sum64String("Unknown")
	seedVar        = xxhash.Sum64String("Var")
	seedOpaqueVar  = xxhash.Sum64String("OpaqueVar")
	seedNamedFn    = xxhash.Sum64String("NamedFn")
	seedLookup     = xxhash.Sum64String("Lookup")
	seedSum        = xxhash.Sum64String("Sum")
	seedProd       = xxhash.Sum64String("Prod")
	seedPow        = xxhash.Sum64String("Pow")
	seedIntDiv     = xxhash.Sum64String("IntDiv")
	seedMod        = xxhash.Sum64String("Mod")
	seedLog        = xxhash.Sum64String("Log")
	seedFloor      = xxhash.Sum64String("Floor")
	seedCeil       = xxhash.Sum64String("Ceil")
	seedAbs        = xxhash.Sum64String("Abs")
	seedIfThenElse = xxhash.Sum64String("IfThenElse")
	seedBigSum     = xxhash.Sum64String("BigSum")
	seedPredicate  = xxhash.Sum64String("Predicate")
)

func hashBigInt(n *big.Int) uint64 {
	return xxhash.Sum64(n.Bytes()) ^ uint64(n.Sign()+2)
}

func hashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

func hashUint64(n uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return xxhash.Sum64(buf[:])
}

// Digest computes a per-kind seed-salted structural hash of e. It is a
// *filter*, not a witness: two structurally different expressions may
// collide, so the engine always confirms a digest match with Equal before
// treating two subtrees as interchangeable. Numerator
// and denominator-shaped children are distinguished by re-hashing the
// bitwise complement of the second operand's digest before XOR-ing it in,
// so that e.g. IntDiv(n, d) and IntDiv(d, n) do not hash the same by
// accident of commutative XOR.
func Digest(e Expr) uint64 {
	switch t := e.(type) {
	case *ConstExpr:
		return seedConst ^ hashBigInt(t.Value)
	case *posInfExpr:
		return seedPosInf
	case *negInfExpr:
		return seedNegInf
	case *unknownExpr:
		return seedUnknown
	case *VarExpr:
		return seedVar ^ hashUint64(uint64(t.ID))
	case *OpaqueVarExpr:
		return seedOpaqueVar ^ Digest(t.Inner)
	case *NamedFnExpr:
		return seedNamedFn ^ hashString(t.Name)
	case *LookupExpr:
		h := seedLookup ^ Digest(t.Index) ^ hashUint64(uint64(t.ID))
		for _, e2 := range t.Table {
			h ^= Digest(e2)
		}
		return h
	case *SumExpr:
		h := seedSum
		for _, term := range t.Terms {
			h ^= Digest(term)
		}
		return h
	case *ProdExpr:
		h := seedProd
		for _, f := range t.Factors {
			h ^= Digest(f)
		}
		return h
	case *PowExpr:
		return seedPow ^ Digest(t.Base) ^ hashUint64(^Digest(t.Exponent))
	case *IntDivExpr:
		return seedIntDiv ^ Digest(t.Num) ^ hashUint64(^Digest(t.Den))
	case *ModExpr:
		return seedMod ^ Digest(t.Dividend) ^ hashUint64(^Digest(t.Divisor))
	case *LogExpr:
		return seedLog ^ Digest(t.Base) ^ hashUint64(^Digest(t.X))
	case *FloorExpr:
		return seedFloor ^ Digest(t.E)
	case *CeilExpr:
		return seedCeil ^ Digest(t.E)
	case *AbsExpr:
		return seedAbs ^ Digest(t.E)
	case *IfThenElseExpr:
		return seedIfThenElse ^ t.Pred.digest() ^ Digest(t.Then) ^ hashUint64(^Digest(t.Else))
	case *BigSumExpr:
		return seedBigSum ^ Digest(t.From) ^ hashUint64(^Digest(t.UpTo)) ^ Digest(t.Body)
	default:
		return 0
	}
}
