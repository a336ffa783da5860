package graph

import (
	"prismslice/internal/model"
	"prismslice/internal/varset"
)

// BuildCDGVertices emits one fine-grained vertex per declaration, guard,
// rate, and assignment, in the canonical order relied upon by the
// emitter: global decls (bools, ints, consts, formulas) in AST order;
// then, per module in AST order, bool decls, int decls, then per command
// a guard followed by each update's rate and assignment(s); finally, if
// present, one init vertex.
func BuildCDGVertices(p *model.Program) []*Vertex {
	var verts []*Vertex

	for i := range p.GlobalBools {
		d := &p.GlobalBools[i]
		verts = append(verts, declVertex(d, DeclGlobalBool, model.GlobalSentinel, globalBoolText(d)))
	}
	for i := range p.GlobalInts {
		d := &p.GlobalInts[i]
		verts = append(verts, declVertex(d, DeclGlobalInt, model.GlobalSentinel, globalIntText(d)))
	}
	for i := range p.Constants {
		c := &p.Constants[i]
		ref := varset.New()
		ref.Add(c.Var)
		ref.AddExprRefs(&c.Value)
		verts = append(verts, &Vertex{
			Identifier: c.Var.Index,
			Kind:       DeclConst,
			Module:     model.GlobalSentinel,
			Def:        singleton(c.Var),
			Ref:        ref,
			Text:       constText(c),
		})
	}
	for i := range p.Formulas {
		f := &p.Formulas[i]
		ref := varset.New()
		ref.Add(f.Var)
		ref.AddExprRefs(&f.Value)
		verts = append(verts, &Vertex{
			Identifier: f.Var.Index,
			Kind:       DeclFormula,
			Module:     model.GlobalSentinel,
			Def:        singleton(f.Var),
			Ref:        ref,
			Text:       formulaText(f),
		})
	}

	for m := range p.Modules {
		mod := &p.Modules[m]
		for i := range mod.Bools {
			d := &mod.Bools[i]
			verts = append(verts, declVertex(d, Decl, mod.Name, moduleBoolText(d)))
		}
		for i := range mod.Ints {
			d := &mod.Ints[i]
			verts = append(verts, declVertex(d, Decl, mod.Name, moduleIntText(d)))
		}
		for ci := range mod.Commands {
			cmd := &mod.Commands[ci]
			verts = append(verts, &Vertex{
				Identifier: cmd.GlobalIndex,
				Kind:       Guard,
				Module:     mod.Name,
				Def:        varset.New(),
				Ref:        varset.FromExprRefs(cmd.Guard),
				Text:       cmd.Guard.String(),
			})
			for ui := range cmd.Updates {
				u := &cmd.Updates[ui]
				verts = append(verts, &Vertex{
					Identifier: u.GlobalIndex,
					Kind:       Rate,
					Module:     mod.Name,
					Def:        varset.New(),
					Ref:        varset.FromExprRefs(u.Likelihood),
					Text:       u.Likelihood.String(),
				})
				if len(u.Assignments) == 0 {
					verts = append(verts, &Vertex{
						Identifier: u.GlobalIndex,
						Kind:       AssignmentV,
						Module:     mod.Name,
						Def:        varset.New(),
						Ref:        varset.New(),
						Text:       syntheticTrueAssignment,
					})
					continue
				}
				for ai := range u.Assignments {
					a := &u.Assignments[ai]
					def := varset.New()
					def.Add(a.Target)
					verts = append(verts, &Vertex{
						Identifier: u.GlobalIndex,
						Kind:       AssignmentV,
						Module:     mod.Name,
						Def:        def,
						Ref:        varset.FromExprRefs(a.Value),
						Text:       assignmentText(a),
					})
				}
			}
		}
	}

	if p.Init != nil {
		verts = append(verts, &Vertex{
			Identifier: InitIdentifier,
			Kind:       InitV,
			Module:     model.GlobalSentinel,
			Def:        varset.New(),
			Ref:        varset.FromExprRefs(p.Init.Value),
			Text:       initText(p.Init),
		})
	}

	return verts
}

func singleton(v *model.Variable) varset.Set {
	s := varset.New()
	s.Add(v)
	return s
}

// declVertex builds a decl/decl_gb/decl_gi vertex for variable declaration
// d: def is {d.Var}; ref is {d.Var} union the variables referenced by its
// own range bounds and initializer.
func declVertex(d *model.VarDecl, kind Kind, module, text string) *Vertex {
	ref := varset.New()
	ref.Add(d.Var)
	ref.AddExprRefs(d.Low)
	ref.AddExprRefs(d.High)
	ref.AddExprRefs(d.Init)
	return &Vertex{
		Identifier: d.Var.Index,
		Kind:       kind,
		Module:     module,
		Def:        singleton(d.Var),
		Ref:        ref,
		Text:       text,
	}
}
