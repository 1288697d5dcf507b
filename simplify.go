package symexpr

import "github.com/pkg/errors"

// simplifyConfig holds the driver's tunable knobs.
type simplifyConfig struct {
	fuel int
}

// SimplifyOpt configures Simplify.
type SimplifyOpt func(*simplifyConfig)

// WithFuel overrides the default fixpoint iteration budget (1000).
func WithFuel(n int) SimplifyOpt {
	return func(c *simplifyConfig) { c.fuel = n }
}

// Simplify drives an expression to a fixpoint by repeatedly rebuilding it
// through its smart constructors. Every constructor already normalizes
// its own node on the way up, so a single rebuild
// usually suffices; the loop exists for the rarer case where normalizing
// an outer node (e.g. an IfThenElse whose predicate only becomes decidable
// once its branches have themselves been rebuilt, or a BigSum whose body
// only closes into a simpler form in a later pass) unlocks another round
// of rewriting below it. A visited-digest set detects a rewrite cycle and
// returns the last expression seen rather than loop forever; running out
// of fuel without reaching either a fixpoint or a detected cycle is
// reported as ErrFixpointExhausted, since it points at a bug in the
// rewrite rules rather than a property of the input.
func Simplify(e Expr, opts ...SimplifyOpt) (Expr, error) {
	cfg := simplifyConfig{fuel: 1000}
	for _, o := range opts {
		o(&cfg)
	}

	cur := e
	visited := map[uint64]bool{Digest(cur): true}
	for i := 0; i < cfg.fuel; i++ {
		next := rebuild(cur)
		if Equal(next, cur) {
			return next, nil
		}
		d := Digest(next)
		if visited[d] {
			log.Warnf("symexpr: simplify cycled back to a previously seen expression at %s", next.String())
			return next, nil
		}
		visited[d] = true
		cur = next
	}
	return cur, errors.Wrapf(ErrFixpointExhausted, "symexpr: no fixpoint after %d rounds", cfg.fuel)
}

// rebuild reconstructs e bottom-up through the smart constructors,
// unconditionally (unlike substitute, which short-circuits when its sigma
// is empty).
func rebuild(e Expr) Expr {
	switch t := e.(type) {
	case *ConstExpr, *posInfExpr, *negInfExpr, *unknownExpr:
		return e
	case *VarExpr:
		return simplifyVar(&VarExpr{ID: t.ID, Name: t.Name, Range: t.Range})
	case *OpaqueVarExpr:
		return e
	case *NamedFnExpr:
		return e
	case *LookupExpr:
		tab := make([]Expr, len(t.Table))
		for i, e2 := range t.Table {
			tab[i] = rebuild(e2)
		}
		return Lookup(tab, rebuild(t.Index), t.ID)
	case *SumExpr:
		out := make([]Expr, len(t.Terms))
		for i, term := range t.Terms {
			out[i] = rebuild(term)
		}
		return Add(out...)
	case *ProdExpr:
		out := make([]Expr, len(t.Factors))
		for i, f := range t.Factors {
			out[i] = rebuild(f)
		}
		return Mul(out...)
	case *PowExpr:
		return Pow(rebuild(t.Base), rebuild(t.Exponent))
	case *IntDivExpr:
		return mustNoError(IntDiv(rebuild(t.Num), rebuild(t.Den)))
	case *ModExpr:
		return mustNoError(Mod(rebuild(t.Dividend), rebuild(t.Divisor)))
	case *LogExpr:
		return Log(rebuild(t.Base), rebuild(t.X))
	case *FloorExpr:
		return Floor(rebuild(t.E))
	case *CeilExpr:
		return Ceil(rebuild(t.E))
	case *AbsExpr:
		return Abs(rebuild(t.E))
	case *IfThenElseExpr:
		return IfThenElse(NewPredicate(rebuild(t.Pred.Lhs), t.Pred.Op, rebuild(t.Pred.Rhs)), rebuild(t.Then), rebuild(t.Else))
	case *BigSumExpr:
		return bigSumOf(rebuild(t.From), rebuild(t.UpTo), t.BoundVar, rebuild(t.Body))
	default:
		return e
	}
}
