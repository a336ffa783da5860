// Package prismfile is a minimal, hand-written reader for the textual
// subset of the PRISM-like language this repository's model.Program can
// represent. It exists only so the CLI has something to point at a
// FILE argument with; the slicing core (internal/model, extract, graph,
// slice, emit, bench) never imports this package and has no dependence
// on its parsing choices. See SPEC_FULL.md §6.2 and DESIGN.md entry 10.
package prismfile

import (
	"fmt"
	"strings"

	"prismslice/internal/clierr"
	"prismslice/internal/model"
)

var modelTypeKeywords = map[string]model.ModelType{
	"dtmc":  model.DTMC,
	"mdp":   model.MDP,
	"ctmc":  model.CTMC,
	"ctmdp": model.CTMDP,
	"ma":    model.MA,
	"pomdp": model.POMDP,
	"pta":   model.PTA,
	"smg":   model.SMG,
}

type parser struct {
	toks     []token
	pos      int
	sym      *symtab
	cmdIndex commandIndexer
	updIndex commandIndexer
}

// commandIndexer hands out the program-wide unique global indices the
// data model requires for commands and updates. Each parser owns two
// independent instances (one per counter) so repeated Parse calls in the
// same process never leak state across documents.
type commandIndexer struct{ next int }

func (c *commandIndexer) take() int { i := c.next; c.next++; return i }

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos].text
}

func (p *parser) peekAt(offset int) string {
	i := p.pos + offset
	if i >= len(p.toks) {
		return ""
	}
	return p.toks[i].text
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) expect(want string) error {
	got := p.next()
	if got != want {
		return fmt.Errorf("expected %q, got %q at token %d", want, got, p.pos-1)
	}
	return nil
}

func (p *parser) atEOF() bool { return p.pos >= len(p.toks) }

// captureExpr reads tokens (tracking parenthesis depth so nested
// expressions are captured whole) until it sees one of terminators at
// depth 0, without consuming the terminator. It resolves every
// already-declared identifier it encounters against the symbol table, so
// declarations must precede their use within each scope (global, then
// per module) — the ordering every well-formed PRISM file already uses.
func (p *parser) captureExpr(terminators map[string]bool) model.Expr {
	depth := 0
	var parts []string
	var refs []*model.Variable
	for !p.atEOF() {
		t := p.peek()
		if depth == 0 && terminators[t] {
			break
		}
		p.next()
		switch t {
		case "(":
			depth++
		case ")":
			depth--
		}
		parts = append(parts, t)
		if t != "" && isIdentStart(rune(t[0])) && !reservedWords[t] {
			if v := p.sym.lookup(t); v != nil {
				refs = append(refs, v)
			}
		}
	}
	return model.Expr{Text: joinTokens(parts), Refs: refs}
}

// joinTokens renders a captured token list back into readable source
// text: no space before ')', ',' or the prime "'", nor after '(', nor
// between the prime and '='; a single space everywhere else.
func joinTokens(toks []string) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			prev := toks[i-1]
			if t != ")" && t != "," && t != "'" && prev != "(" && !(prev == "'" && t == "=") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t)
	}
	return b.String()
}

// Parse reads a PRISM-like source document into a model.Program.
func Parse(src string) (*model.Program, error) {
	p := &parser{toks: tokenize(src), sym: newSymtab()}
	prog := &model.Program{Type: model.UnknownModel}

	for !p.atEOF() {
		switch kw := p.peek(); {
		case isModelTypeKeyword(kw):
			p.next()
			prog.Type = modelTypeKeywords[kw]
		case kw == "const":
			p.next()
			c, err := p.parseConst()
			if err != nil {
				return nil, clierr.Wrap(clierr.ParseError, err, "parsing const declaration")
			}
			prog.Constants = append(prog.Constants, c)
		case kw == "formula":
			p.next()
			f, err := p.parseFormula()
			if err != nil {
				return nil, clierr.Wrap(clierr.ParseError, err, "parsing formula declaration")
			}
			prog.Formulas = append(prog.Formulas, f)
		case kw == "global":
			p.next()
			d, err := p.parseVarDecl()
			if err != nil {
				return nil, clierr.Wrap(clierr.ParseError, err, "parsing global declaration")
			}
			if d.Kind == model.BoolVar {
				prog.GlobalBools = append(prog.GlobalBools, d)
			} else {
				prog.GlobalInts = append(prog.GlobalInts, d)
			}
		case kw == "module":
			p.next()
			m, err := p.parseModule()
			if err != nil {
				return nil, clierr.Wrap(clierr.ParseError, err, "parsing module")
			}
			prog.Modules = append(prog.Modules, m)
		case kw == "init":
			p.next()
			e := p.captureExpr(map[string]bool{"endinit": true})
			if err := p.expect("endinit"); err != nil {
				return nil, clierr.Wrap(clierr.ParseError, err, "parsing init construct")
			}
			prog.Init = &model.InitConstruct{Value: e}
		case kw == "":
			// EOF
		default:
			return nil, clierr.New(clierr.ParseError, "unexpected token %q at top level", kw)
		}
	}
	return prog, nil
}

func isModelTypeKeyword(kw string) bool {
	_, ok := modelTypeKeywords[kw]
	return ok
}

func (p *parser) parseConst() (model.ConstDecl, error) {
	typ := model.ConstInt
	switch p.peek() {
	case "int":
		p.next()
		typ = model.ConstInt
	case "double":
		p.next()
		typ = model.ConstDouble
	case "bool":
		p.next()
		typ = model.ConstBool
	}
	name := p.next()
	if err := p.expect("="); err != nil {
		return model.ConstDecl{}, err
	}
	e := p.captureExpr(map[string]bool{";": true})
	if err := p.expect(";"); err != nil {
		return model.ConstDecl{}, err
	}
	v := p.sym.declare(name)
	return model.ConstDecl{Var: v, Type: typ, Value: e}, nil
}

func (p *parser) parseFormula() (model.FormulaDecl, error) {
	name := p.next()
	if err := p.expect("="); err != nil {
		return model.FormulaDecl{}, err
	}
	e := p.captureExpr(map[string]bool{";": true})
	if err := p.expect(";"); err != nil {
		return model.FormulaDecl{}, err
	}
	v := p.sym.declare(name)
	return model.FormulaDecl{Var: v, Value: e}, nil
}

// parseVarDecl parses `NAME : bool|int|[LOW..HIGH] [init EXPR];` — used
// for both global and module-scoped declarations (the "global " keyword,
// if any, is consumed by the caller).
func (p *parser) parseVarDecl() (model.VarDecl, error) {
	name := p.next()
	if err := p.expect(":"); err != nil {
		return model.VarDecl{}, err
	}

	var kind model.VarKind
	var low, high *model.Expr
	switch p.peek() {
	case "bool":
		p.next()
		kind = model.BoolVar
	case "int":
		p.next()
		kind = model.IntVar
	case "[":
		p.next()
		kind = model.IntVar
		lo := p.captureExpr(map[string]bool{"..": true})
		if err := p.expect(".."); err != nil {
			return model.VarDecl{}, err
		}
		hi := p.captureExpr(map[string]bool{"]": true})
		if err := p.expect("]"); err != nil {
			return model.VarDecl{}, err
		}
		low, high = &lo, &hi
	default:
		return model.VarDecl{}, fmt.Errorf("expected bool, int, or range for %q, got %q", name, p.peek())
	}

	var init *model.Expr
	if p.peek() == "init" {
		p.next()
		e := p.captureExpr(map[string]bool{";": true})
		init = &e
	}
	if err := p.expect(";"); err != nil {
		return model.VarDecl{}, err
	}

	v := p.sym.declare(name)
	return model.VarDecl{Var: v, Kind: kind, Low: low, High: high, Init: init}, nil
}

func (p *parser) parseModule() (model.Module, error) {
	mod := model.Module{Name: p.next()}
	for !p.atEOF() && p.peek() != "endmodule" {
		if p.peek() == "[" {
			cmd, err := p.parseCommand()
			if err != nil {
				return mod, err
			}
			mod.Commands = append(mod.Commands, cmd)
			continue
		}
		// A variable declaration: IDENT ':' ...
		if p.peekAt(1) == ":" {
			d, err := p.parseVarDecl()
			if err != nil {
				return mod, err
			}
			if d.Kind == model.BoolVar {
				mod.Bools = append(mod.Bools, d)
			} else {
				mod.Ints = append(mod.Ints, d)
			}
			continue
		}
		return mod, fmt.Errorf("unexpected token %q in module %s", p.peek(), mod.Name)
	}
	if err := p.expect("endmodule"); err != nil {
		return mod, err
	}
	return mod, nil
}

func (p *parser) parseCommand() (model.Command, error) {
	if err := p.expect("["); err != nil {
		return model.Command{}, err
	}
	var actionParts []string
	for p.peek() != "]" && !p.atEOF() {
		actionParts = append(actionParts, p.next())
	}
	if err := p.expect("]"); err != nil {
		return model.Command{}, err
	}
	action := strings.Join(actionParts, "")

	guard := p.captureExpr(map[string]bool{"->": true})
	if err := p.expect("->"); err != nil {
		return model.Command{}, err
	}

	cmd := model.Command{Action: action, Guard: guard, GlobalIndex: p.cmdIndex.take()}

	for {
		var likelihood model.Expr
		var assigns []model.Assignment
		if p.peek() == "(" || p.peek() == "true" {
			// No "p:" prefix: a bare assignment list (or the literal "true")
			// means an implicit, unconditioned update of likelihood 1.
			likelihood = model.Expr{Text: "1"}
			assigns = p.parseAssignList()
		} else {
			likelihood = p.captureExpr(map[string]bool{":": true, "+": true, ";": true})
			if p.peek() == ":" {
				p.next()
				assigns = p.parseAssignList()
			}
		}
		cmd.Updates = append(cmd.Updates, model.Update{
			Likelihood:  likelihood,
			Assignments: assigns,
			GlobalIndex: p.updIndex.take(),
		})
		if p.peek() == "+" {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(";"); err != nil {
		return model.Command{}, err
	}
	return cmd, nil
}

func (p *parser) parseAssignList() []model.Assignment {
	if p.peek() == "true" {
		p.next()
		return nil
	}
	var assigns []model.Assignment
	for p.peek() == "(" {
		p.next()
		name := p.next()
		p.next() // consume "'"
		p.next() // consume "="
		value := p.captureExpr(map[string]bool{")": true})
		p.next() // consume ")"
		v := p.sym.lookup(name)
		if v == nil {
			v = p.sym.declare(name)
		}
		assigns = append(assigns, model.Assignment{Target: v, Value: value})
		if p.peek() == "&" {
			p.next()
			continue
		}
		break
	}
	return assigns
}
