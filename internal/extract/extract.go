// Package extract computes def/ref/action sets from a model.Module or
// model.Program, the raw material every dependence-graph edge predicate
// is built from.
package extract

import (
	"prismslice/internal/model"
	"prismslice/internal/varset"
)

// declVars returns the set of variables declared in decls (just the
// declared variable itself, not its bounds or initializer).
func declVars(decls []model.VarDecl) varset.Set {
	s := varset.New()
	for i := range decls {
		s.Add(decls[i].Var)
	}
	return s
}

// declRefs returns the set of variables referenced by each declaration's
// own defining expressions: range bounds and initializer.
func declRefs(decls []model.VarDecl) varset.Set {
	s := varset.New()
	for i := range decls {
		d := &decls[i]
		s.AddExprRefs(d.Low)
		s.AddExprRefs(d.High)
		s.AddExprRefs(d.Init)
	}
	return s
}

// assignmentTargets returns the set of every assignment target across
// every update of every command in cmds.
func assignmentTargets(cmds []model.Command) varset.Set {
	s := varset.New()
	for _, c := range cmds {
		for _, u := range c.Updates {
			for _, a := range u.Assignments {
				s.Add(a.Target)
			}
		}
	}
	return s
}

// commandRefs returns the variables referenced by every guard, every
// update's likelihood, and every assignment's RHS in cmds.
func commandRefs(cmds []model.Command) varset.Set {
	s := varset.New()
	for _, c := range cmds {
		s.AddExprRefs(&c.Guard)
		for _, u := range c.Updates {
			s.AddExprRefs(&u.Likelihood)
			for _, a := range u.Assignments {
				s.AddExprRefs(&a.Value)
			}
		}
	}
	return s
}

// ModuleDefs is the set of variables syntactically defined inside module m:
// its declared booleans and integers, unioned with the targets of every
// assignment in every update of every command.
func ModuleDefs(m *model.Module) varset.Set {
	s := declVars(m.Bools)
	s.Union(declVars(m.Ints))
	s.Union(assignmentTargets(m.Commands))
	return s
}

// ModuleRefs is the set of variables syntactically referenced inside
// module m: the declared variables themselves, variables gathered from
// declaration range/initial-value expressions, and variables gathered
// from every guard, likelihood, and assignment RHS.
func ModuleRefs(m *model.Module) varset.Set {
	s := declVars(m.Bools)
	s.Union(declVars(m.Ints))
	s.Union(declRefs(m.Bools))
	s.Union(declRefs(m.Ints))
	s.Union(commandRefs(m.Commands))
	return s
}

// ModuleActions is the set of non-empty action labels used by module m's
// commands.
func ModuleActions(m *model.Module) map[string]struct{} {
	acts := make(map[string]struct{})
	for _, c := range m.Commands {
		if c.Action != "" {
			acts[c.Action] = struct{}{}
		}
	}
	return acts
}

// GlobalDefs is the set of variables syntactically defined at program
// scope: global booleans, global integers, constants, formulas, and
// (if present) variables gathered by the initial-states expression.
func GlobalDefs(p *model.Program) varset.Set {
	s := declVars(p.GlobalBools)
	s.Union(declVars(p.GlobalInts))
	for i := range p.Constants {
		s.Add(p.Constants[i].Var)
	}
	for i := range p.Formulas {
		s.Add(p.Formulas[i].Var)
	}
	if p.Init != nil {
		s.AddExprRefs(&p.Init.Value)
	}
	return s
}

// GlobalRefs is GlobalDefs plus the variables gathered from each
// declaration's own defining/range/initial-value/constant/formula
// expression.
func GlobalRefs(p *model.Program) varset.Set {
	s := GlobalDefs(p)
	s.Union(declRefs(p.GlobalBools))
	s.Union(declRefs(p.GlobalInts))
	for i := range p.Constants {
		s.AddExprRefs(&p.Constants[i].Value)
	}
	for i := range p.Formulas {
		s.AddExprRefs(&p.Formulas[i].Value)
	}
	return s
}
