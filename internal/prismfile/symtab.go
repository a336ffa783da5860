package prismfile

import "prismslice/internal/model"

// symtab assigns stable, globally-unique indices to variables as they are
// declared, and resolves identifier tokens back to the *model.Variable
// they name while parsing expressions.
type symtab struct {
	byName map[string]*model.Variable
	next   int
}

func newSymtab() *symtab {
	return &symtab{byName: make(map[string]*model.Variable)}
}

// declare registers a new variable name, assigning it the next global
// index. Declaring the same name twice returns the existing variable
// (the front end does not validate duplicate declarations; that is the
// parser's job, out of scope here).
func (s *symtab) declare(name string) *model.Variable {
	if v, ok := s.byName[name]; ok {
		return v
	}
	v := &model.Variable{Index: s.next, Name: name}
	s.next++
	s.byName[name] = v
	return v
}

// lookup resolves an already-declared name, or nil.
func (s *symtab) lookup(name string) *model.Variable {
	return s.byName[name]
}

var reservedWords = map[string]bool{
	"true": true, "false": true, "min": true, "max": true, "floor": true,
	"ceil": true, "pow": true, "mod": true, "if": true, "then": true,
	"else": true,
}
