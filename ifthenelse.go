package symexpr

// IfThenElse builds a conditional expression: fold away when pred decides
// statically (both operands of pred evaluate to constants), and collapse
// when the two branches are already structurally equal.
func IfThenElse(pred *Predicate, then, els Expr) Expr {
	if v, ok := pred.evalConst(); ok {
		if v {
			return then
		}
		return els
	}
	if Equal(then, els) {
		return then
	}
	return &IfThenElseExpr{Pred: pred, Then: then, Else: els}
}
