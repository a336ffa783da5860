// Package emit writes a canonical PRISM-like source file driven by the
// original AST, restricted to the elements whose corresponding vertex
// survived slicing. It never rewrites branch likelihood text, only the
// assignment lists that follow it, so that total probability is
// preserved whenever the original conserved it.
package emit

import (
	"bufio"
	"fmt"
	"io"

	"prismslice/internal/clierr"
	"prismslice/internal/graph"
	"prismslice/internal/model"
	"prismslice/internal/slice"
)

// lookups are the index structures built once from the vertex slice so
// the AST walk below never has to scan linearly for a vertex.
type lookups struct {
	declByVarIndex map[int]int     // model.Variable.Index -> vertex index
	guardByCmd     map[int]int     // command global index -> vertex index
	rateByUpdate   map[int]int     // update global index -> vertex index
	assignsByUpd   map[int][]int   // update global index -> ordered assignment vertex indices
	initIdx        int             // -1 if absent
}

func buildLookups(verts []*graph.Vertex) *lookups {
	l := &lookups{
		declByVarIndex: make(map[int]int),
		guardByCmd:     make(map[int]int),
		rateByUpdate:   make(map[int]int),
		assignsByUpd:   make(map[int][]int),
		initIdx:        -1,
	}
	for i, v := range verts {
		switch v.Kind {
		case graph.DeclGlobalBool, graph.DeclGlobalInt, graph.DeclConst, graph.DeclFormula, graph.Decl:
			l.declByVarIndex[v.Identifier] = i
		case graph.Guard:
			l.guardByCmd[v.Identifier] = i
		case graph.Rate:
			l.rateByUpdate[v.Identifier] = i
		case graph.AssignmentV:
			l.assignsByUpd[v.Identifier] = append(l.assignsByUpd[v.Identifier], i)
		case graph.InitV:
			l.initIdx = i
		}
	}
	return l
}

// Emit writes the slice's source reconstruction of p to w.
func Emit(w io.Writer, p *model.Program, verts []*graph.Vertex, included slice.Set) error {
	bw := bufio.NewWriter(w)
	l := buildLookups(verts)

	fmt.Fprintf(bw, "%s\n\n", p.Type.Keyword())

	for i := range p.GlobalBools {
		emitDecl(bw, l, included, verts, p.GlobalBools[i].Var.Index)
	}
	for i := range p.GlobalInts {
		emitDecl(bw, l, included, verts, p.GlobalInts[i].Var.Index)
	}
	for i := range p.Constants {
		emitDecl(bw, l, included, verts, p.Constants[i].Var.Index)
	}
	for i := range p.Formulas {
		emitDecl(bw, l, included, verts, p.Formulas[i].Var.Index)
	}
	fmt.Fprint(bw, "\n")

	slicedModules := make(map[string]bool)
	for i := range included {
		slicedModules[verts[i].Module] = true
	}

	for m := range p.Modules {
		mod := &p.Modules[m]
		if !slicedModules[mod.Name] {
			continue
		}
		fmt.Fprintf(bw, "module %s\n", mod.Name)
		for i := range mod.Bools {
			emitModuleDecl(bw, l, included, verts, mod.Bools[i].Var.Index)
		}
		for i := range mod.Ints {
			emitModuleDecl(bw, l, included, verts, mod.Ints[i].Var.Index)
		}
		for _, cmd := range mod.Commands {
			if err := emitCommand(bw, l, included, verts, &cmd); err != nil {
				return err
			}
		}
		fmt.Fprint(bw, "endmodule\n\n")
	}

	if p.Init != nil && l.initIdx >= 0 && included[l.initIdx] {
		fmt.Fprintf(bw, "%s\n", verts[l.initIdx].Text)
	}

	if err := bw.Flush(); err != nil {
		return clierr.Wrap(clierr.IoError, err, "writing slice output")
	}
	return nil
}

func emitDecl(w *bufio.Writer, l *lookups, included slice.Set, verts []*graph.Vertex, varIndex int) {
	idx, ok := l.declByVarIndex[varIndex]
	if !ok || !included[idx] {
		return
	}
	fmt.Fprintf(w, "%s;\n", verts[idx].Text)
}

func emitModuleDecl(w *bufio.Writer, l *lookups, included slice.Set, verts []*graph.Vertex, varIndex int) {
	idx, ok := l.declByVarIndex[varIndex]
	if !ok || !included[idx] {
		return
	}
	fmt.Fprintf(w, "  %s;\n", verts[idx].Text)
}

func emitCommand(w *bufio.Writer, l *lookups, included slice.Set, verts []*graph.Vertex, cmd *model.Command) error {
	gi, ok := l.guardByCmd[cmd.GlobalIndex]
	if !ok {
		return clierr.New(clierr.InternalInvariant, "command %d has no guard vertex", cmd.GlobalIndex)
	}
	if !included[gi] {
		return nil
	}
	fmt.Fprintf(w, "  [%s] %s -> ", cmd.Action, cmd.Guard.String())

	anyRateIncluded := false
	for _, u := range cmd.Updates {
		if ri, ok := l.rateByUpdate[u.GlobalIndex]; ok && included[ri] {
			anyRateIncluded = true
			break
		}
	}
	if !anyRateIncluded {
		fmt.Fprint(w, "true;\n")
		return nil
	}

	for i, u := range cmd.Updates {
		if i > 0 {
			fmt.Fprint(w, " + ")
		}
		ri, inSlice := l.rateByUpdate[u.GlobalIndex]
		if inSlice && included[ri] {
			var survivors []string
			for _, ai := range l.assignsByUpd[u.GlobalIndex] {
				if included[ai] {
					survivors = append(survivors, verts[ai].Text)
				}
			}
			if len(survivors) == 0 {
				fmt.Fprintf(w, "%s: true", u.Likelihood.String())
			} else {
				fmt.Fprintf(w, "%s:%s", u.Likelihood.String(), joinAmp(survivors))
			}
		} else {
			fmt.Fprintf(w, "%s: true", u.Likelihood.String())
		}
	}
	fmt.Fprint(w, ";\n")
	return nil
}

func joinAmp(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "&" + p
	}
	return out
}
