// Package varset provides name-keyed sets of model.Variable, the
// comparison unit used throughout the dependence graph builders. Variables
// that originate from different AST subtrees (e.g. a declaration's own
// vertex versus a guard vertex referencing the same program variable) are
// distinct Go values but share a Name; every cross-vertex set operation in
// this module therefore compares by Name, never by pointer or Index.
package varset

import (
	"sort"

	"prismslice/internal/model"
)

// Set is a name-keyed collection of variables.
type Set map[string]*model.Variable

// New returns an empty Set.
func New() Set {
	return make(Set)
}

// Add inserts v into the set (no-op if v is nil).
func (s Set) Add(v *model.Variable) {
	if v == nil {
		return
	}
	s[v.Name] = v
}

// AddAll inserts every non-nil variable in vs.
func (s Set) AddAll(vs ...*model.Variable) {
	for _, v := range vs {
		s.Add(v)
	}
}

// Union merges other into s and returns s.
func (s Set) Union(other Set) Set {
	for name, v := range other {
		s[name] = v
	}
	return s
}

// Has reports whether a variable with the given name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// IntersectsByName reports whether s and other share at least one variable
// name. This is the predicate used by every CDG/MDG data-dependence edge.
func (s Set) IntersectsByName(other Set) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for name := range small {
		if _, ok := big[name]; ok {
			return true
		}
	}
	return false
}

// Names returns the set's variable names in sorted order, for deterministic
// iteration (used only where output must be reproducible, e.g. tests).
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromExprRefs builds a Set from the Refs of one or more expressions.
func FromExprRefs(exprs ...model.Expr) Set {
	s := New()
	for _, e := range exprs {
		s.AddAll(e.Refs...)
	}
	return s
}

// AddExprRefs unions the variables referenced by expr into s. A nil expr
// is a no-op, so callers can pass optional fields (VarDecl.Init, .Low, .High)
// directly.
func (s Set) AddExprRefs(expr *model.Expr) {
	if expr == nil {
		return
	}
	s.AddAll(expr.Refs...)
}
