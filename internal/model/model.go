// Package model is a read-only view over a parsed PRISM-like probabilistic
// program. Values here are produced by an external parser (see
// internal/prismfile for the minimal reader shipped with this repo); every
// other package in this module treats them as immutable.
package model

import "fmt"

// Variable is an opaque identity with a stable, globally-unique index and a
// human-readable name. Within one parsed program, Index and Name form a
// bijection. Equality across independently-built subtrees must be done by
// Name (see internal/varset), not by pointer or Index, per the "variable
// identity under cloning" note in the specification.
type Variable struct {
	Index int
	Name  string
}

// Expr is a canonical source-text rendering of an expression together with
// the variables it references. The parser populates Refs; nothing in this
// module re-derives variable references from Text.
type Expr struct {
	Text string
	Refs []*Variable
}

// String returns the canonical source text of the expression.
func (e Expr) String() string { return e.Text }

// IsTriviallyTrue reports whether the expression is syntactically the
// literal "true", the only form of triviality the slicer checks (command
// guards, in its dead-command prune).
func (e Expr) IsTriviallyTrue() bool { return e.Text == "true" }

// VarKind distinguishes boolean from integer-ranged variable declarations.
type VarKind int

const (
	BoolVar VarKind = iota
	IntVar
)

// ConstType is the declared type of a PRISM constant.
type ConstType int

const (
	ConstInt ConstType = iota
	ConstDouble
	ConstBool
)

func (t ConstType) String() string {
	switch t {
	case ConstInt:
		return "int"
	case ConstDouble:
		return "double"
	case ConstBool:
		return "bool"
	default:
		return "double"
	}
}

// VarDecl is a single boolean or integer variable declaration, at global or
// module scope. Low/High are nil for booleans. Init is optional.
type VarDecl struct {
	Var  *Variable
	Kind VarKind
	Low  *Expr // integer lower bound; nil for BoolVar
	High *Expr // integer upper bound; nil for BoolVar
	Init *Expr
}

// ConstDecl is a `const TYPE NAME = EXPR;` declaration.
type ConstDecl struct {
	Var   *Variable
	Type  ConstType
	Value Expr
}

// FormulaDecl is a `formula NAME = EXPR;` declaration.
type FormulaDecl struct {
	Var   *Variable
	Value Expr
}

// Assignment is one `(VAR'=EXPR)` clause inside an update.
type Assignment struct {
	Target *Variable
	Value  Expr
}

// Update is one probabilistic branch of a command: a likelihood weight and
// a (possibly empty) list of assignments. GlobalIndex is unique across all
// updates of the program.
type Update struct {
	Likelihood  Expr
	Assignments []Assignment
	GlobalIndex int
}

// Command is a guarded, probabilistically-updating action. Action is ""
// for an unlabeled command. GlobalIndex is unique across all commands of
// the program.
type Command struct {
	Action      string
	Guard       Expr
	Updates     []Update
	GlobalIndex int
}

// Module is a named container of variable declarations and commands.
type Module struct {
	Name     string
	Bools    []VarDecl
	Ints     []VarDecl
	Commands []Command
}

// InitConstruct is the optional `init EXPR endinit` block.
type InitConstruct struct {
	Value Expr
}

// ModelType is the PRISM model-type header keyword.
type ModelType int

const (
	DTMC ModelType = iota
	MDP
	CTMC
	CTMDP
	MA
	POMDP
	PTA
	SMG
	UnknownModel
)

// Keyword returns the lowercase header keyword emitted for this model
// type, defaulting to "mdp" for an unrecognized type.
func (t ModelType) Keyword() string {
	switch t {
	case DTMC:
		return "dtmc"
	case MDP:
		return "mdp"
	case CTMC:
		return "ctmc"
	case CTMDP:
		return "ctmdp"
	case MA:
		return "ma"
	case POMDP:
		return "pomdp"
	case PTA:
		return "pta"
	case SMG:
		return "smg"
	default:
		return "mdp"
	}
}

func (t ModelType) String() string { return t.Keyword() }

// Program is the whole parsed model.
type Program struct {
	Type        ModelType
	GlobalBools []VarDecl
	GlobalInts  []VarDecl
	Constants   []ConstDecl
	Formulas    []FormulaDecl
	Modules     []Module
	Init        *InitConstruct // nil if the model has no initial construct
}

// ModuleByName returns the module with the given name, or nil.
func (p *Program) ModuleByName(name string) *Module {
	for i := range p.Modules {
		if p.Modules[i].Name == name {
			return &p.Modules[i]
		}
	}
	return nil
}

// GlobalSentinel is the reserved module name used by the "global" MDG
// vertex and by top-level CDG vertices (declarations, init).
const GlobalSentinel = "global"

// ErrNoSuchCommand describes a failed assignment-to-command lookup, which
// would indicate a malformed AST. No function in this module returns it:
// the CDG edge builder adds no dep-ag edge when the lookup fails.
var ErrNoSuchCommand = fmt.Errorf("model: no command for given global index")
