package symexpr

import "github.com/pkg/errors"

// Sentinel error kinds. Callers classify a failure with errors.Is against
// one of these three; the concrete error returned always wraps one of them
// with call-site context via errors.Wrapf.
var (
	// ErrArithmeticDomain marks division/modulo by zero or construction of
	// a malformed expression. It is raised directly by the smart
	// constructor that detects the violation and is never recovered from
	// inside the engine.
	ErrArithmeticDomain = errors.New("symexpr: arithmetic domain error")

	// ErrNotEvaluable marks a failed attempt to fully evaluate a tree that
	// contains a Var, NamedFn, Lookup, IfThenElse, or an infinity. It is
	// always recoverable at the call site; Eval and EvalDouble return it
	// as an ordinary error, and the engine itself swallows it internally
	// whenever it probes a subtree for constant folding.
	ErrNotEvaluable = errors.New("symexpr: expression not evaluable")

	// ErrFixpointExhausted marks the simplification driver's fuel counter
	// reaching zero before reaching a fixpoint. Unlike the other two, this
	// indicates a bug in the rewrite system itself and always surfaces to
	// the caller.
	ErrFixpointExhausted = errors.New("symexpr: simplification did not reach a fixpoint")
)

func domainErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrArithmeticDomain, format, args...)
}

func notEvaluableErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotEvaluable, format, args...)
}

// mustNoError panics when a checked constructor called from a rebuild
// returns an error. Substitute and Simplify's rebuild use it for IntDiv
// and Mod, so a substitution that turns a divisor into zero surfaces as
// this panic (wrapping ErrArithmeticDomain) rather than as a returned
// error: an arithmetic domain error is not recovered from inside the
// engine itself.
func mustNoError(e Expr, err error) Expr {
	if err != nil {
		panic(errors.Wrap(err, "symexpr: internal rewrite violated its own precondition"))
	}
	return e
}
