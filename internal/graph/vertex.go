// Package graph builds the two dependence-graph granularities described in
// the specification — the coarse Module Dependence Graph (MDG) and the
// fine Component Dependence Graph (CDG) — plus their directed edge
// relations. Vertex construction is a pure function of a model.Program;
// edge construction is a pure function of the vertex slice (and, for the
// CDG, the originating Program, to resolve the guard each rate/assignment
// belongs to).
package graph

import (
	"fmt"

	"prismslice/internal/model"
	"prismslice/internal/varset"
)

// Kind discriminates the nine kinds of CDG vertex.
type Kind int

const (
	DeclGlobalBool Kind = iota
	DeclGlobalInt
	DeclConst
	DeclFormula
	Decl // module-scoped boolean or integer declaration
	Guard
	Rate
	AssignmentV
	InitV
)

func (k Kind) String() string {
	switch k {
	case DeclGlobalBool:
		return "decl_gb"
	case DeclGlobalInt:
		return "decl_gi"
	case DeclConst:
		return "decl_c"
	case DeclFormula:
		return "decl_f"
	case Decl:
		return "decl"
	case Guard:
		return "guard"
	case Rate:
		return "rate"
	case AssignmentV:
		return "assignment"
	case InitV:
		return "init"
	default:
		return "?"
	}
}

// IsDecl reports whether k is one of the five declaration kinds
// (decl_gb, decl_gi, decl_c, decl_f, decl) — the predicate used by dep-di.
func (k Kind) IsDecl() bool {
	switch k {
	case DeclGlobalBool, DeclGlobalInt, DeclConst, DeclFormula, Decl:
		return true
	default:
		return false
	}
}

// InitIdentifier is the sentinel identifier used by the single init
// vertex, which has no underlying variable or command/update index.
const InitIdentifier = -1

// Vertex is one fine-grained (CDG) node.
type Vertex struct {
	Identifier int
	Kind       Kind
	Module     string
	Def        varset.Set
	Ref        varset.Set
	Text       string
}

func (v *Vertex) String() string {
	return fmt.Sprintf("%s#%d[%s]", v.Kind, v.Identifier, v.Text)
}

// ModuleVertex is one coarse-grained (MDG) node: one per module, plus a
// final sentinel node named model.GlobalSentinel.
type ModuleVertex struct {
	Name string
	Def  varset.Set
	Ref  varset.Set
	Act  map[string]struct{}
}
