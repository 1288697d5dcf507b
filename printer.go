package symexpr

import (
	"strconv"
	"strings"
)

// String methods render a readable textual form meant for logs and
// debugging, not for round-tripping: there is no parser back from this
// text.

func (c *ConstExpr) String() string { return c.Value.String() }

func (*posInfExpr) String() string  { return "+inf" }
func (*negInfExpr) String() string  { return "-inf" }
func (*unknownExpr) String() string { return "?" }

func (v *VarExpr) String() string {
	return "v_" + v.Name + "_" + strconv.FormatUint(uint64(v.ID), 10)
}

func (o *OpaqueVarExpr) String() string { return "opaque(" + o.Inner.String() + ")" }

func (n *NamedFnExpr) String() string { return n.Name }

func (l *LookupExpr) String() string {
	var parts []string
	for _, e := range l.Table {
		parts = append(parts, e.String())
	}
	return "lookup[" + strings.Join(parts, ",") + "](" + l.Index.String() + ")"
}

func (s *SumExpr) String() string {
	parts := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (p *ProdExpr) String() string {
	parts := make([]string, len(p.Factors))
	for i, f := range p.Factors {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, " * ") + ")"
}

func (p *PowExpr) String() string {
	if c, ok := p.Exponent.(*ConstExpr); ok && c.Value.Sign() < 0 {
		return "1/^(" + p.Base.String() + ")"
	}
	return "pow(" + p.Base.String() + "," + p.Exponent.String() + ")"
}

func (d *IntDivExpr) String() string { return "(" + d.Num.String() + " / " + d.Den.String() + ")" }

func (m *ModExpr) String() string { return "(" + m.Dividend.String() + " % (" + m.Divisor.String() + "))" }

func (l *LogExpr) String() string { return "log(" + l.Base.String() + "," + l.X.String() + ")" }

func (f *FloorExpr) String() string { return "floor(" + f.E.String() + ")" }
func (c *CeilExpr) String() string  { return "ceil(" + c.E.String() + ")" }
func (a *AbsExpr) String() string   { return "abs(" + a.E.String() + ")" }

func (i *IfThenElseExpr) String() string {
	return "if (" + i.Pred.String() + ") then " + i.Then.String() + " else " + i.Else.String()
}

func (b *BigSumExpr) String() string {
	return "bigsum(" + b.BoundVar.String() + "=" + b.From.String() + ".." + b.UpTo.String() + ", " + b.Body.String() + ")"
}
