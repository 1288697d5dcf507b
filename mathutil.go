package symexpr

import "math/big"

// isEven reports whether n is an even integer.
func isEven(n *big.Int) bool {
	return n.Bit(0) == 0
}

// floorDiv is language-independent floor division: it rounds toward
// negative infinity rather than toward zero, unlike big.Int.Quo.
func floorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// floorMod is the remainder complementary to floorDiv: sign(result) ==
// sign(b) (or zero), and floorDiv(a,b)*b + floorMod(a,b) == a always holds,
// by construction rather than by case analysis.
func floorMod(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(floorDiv(a, b), b)
	return r.Sub(a, r)
}

// ceilDiv rounds the quotient a/b toward positive infinity.
func ceilDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) == (b.Sign() < 0) {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// gcdInt returns the non-negative greatest common divisor of a and b.
func gcdInt(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	return g
}

// absBig returns |n|.
func absBig(n *big.Int) *big.Int {
	return new(big.Int).Abs(n)
}

// MinInt, MaxInt, and Clamp are small generic helpers for ordered-value
// clamping. No ecosystem library in the example corpus targets this; three
// three-line functions is the standard-library-only idiom, and is justified
// on that basis in DESIGN.md rather than pulled in as a dependency for
// three one-liners.
type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

func MinInt[T ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func MaxInt[T ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T ordered](v, lo, hi T) T {
	return MinInt(MaxInt(v, lo), hi)
}
