package graph

import (
	"fmt"

	"prismslice/internal/model"
)

// rangeText renders the `int` or `[LOW..HIGH]` portion of an integer
// declaration. A declaration with no Low/High bound is rendered as the
// bare "int" keyword (the spec's "trivially true" range expression).
func rangeText(d *model.VarDecl) string {
	if d.Low == nil && d.High == nil {
		return "int"
	}
	return fmt.Sprintf("[%s..%s]", d.Low.String(), d.High.String())
}

func initSuffix(init *model.Expr) string {
	if init == nil {
		return ""
	}
	return " init " + init.String()
}

// globalBoolText renders `global NAME : bool[ init EXPR]`.
func globalBoolText(d *model.VarDecl) string {
	return fmt.Sprintf("global %s : bool%s", d.Var.Name, initSuffix(d.Init))
}

// globalIntText renders `global NAME : int|[LOW..HIGH][ init EXPR]`.
func globalIntText(d *model.VarDecl) string {
	return fmt.Sprintf("global %s : %s%s", d.Var.Name, rangeText(d), initSuffix(d.Init))
}

// moduleBoolText renders `NAME : bool[ init EXPR]`.
func moduleBoolText(d *model.VarDecl) string {
	return fmt.Sprintf("%s : bool%s", d.Var.Name, initSuffix(d.Init))
}

// moduleIntText renders `NAME : int|[LOW..HIGH][ init EXPR]`.
func moduleIntText(d *model.VarDecl) string {
	return fmt.Sprintf("%s : %s%s", d.Var.Name, rangeText(d), initSuffix(d.Init))
}

// constText renders `const TYPE NAME = EXPR`.
func constText(c *model.ConstDecl) string {
	return fmt.Sprintf("const %s %s = %s", c.Type.String(), c.Var.Name, c.Value.String())
}

// formulaText renders `formula NAME = EXPR`.
func formulaText(f *model.FormulaDecl) string {
	return fmt.Sprintf("formula %s = %s", f.Var.Name, f.Value.String())
}

// assignmentText renders `(VAR'=EXPR)`.
func assignmentText(a *model.Assignment) string {
	return fmt.Sprintf("(%s'=%s)", a.Target.Name, a.Value.String())
}

// initText renders `init EXPR endinit`.
func initText(init *model.InitConstruct) string {
	return fmt.Sprintf("init %s endinit", init.Value.String())
}

// syntheticTrueAssignment is the sentinel assignment vertex synthesized
// for an update with no assignments.
const syntheticTrueAssignment = "true"
