/*
File    : furc/ast/ast.go

Package ast defines the tagged node model the furc parser builds: the
complete set of Expression, Statement and Declaration variants listed in
spec.md §3, plus the top-level File node. Every node knows the source
position it started at and can report structural equality against another
node of the same kind, which is the "equality predicate over AST nodes"
spec.md §8 requires for testing.

Ownership is a plain tree: a File owns its Declarations, a Declaration owns
its Expressions/Statements, and so on. Ident nodes hold a *non-owning*
reference to the object.Object they resolved to (see object.Object.Decl),
so the AST is the only thing that keeps that Object reachable once parsing
finishes and the scope chain that introduced it is discarded.
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/furc/object"
	"github.com/akashmaji946/furc/token"
)

// Node is the root interface every AST node implements.
type Node interface {
	// Pos returns the position of the token that started this node.
	Pos() token.Position
	// String renders a debug-oriented, not-necessarily-reparsable form.
	String() string
}

// Expr is implemented by every Expression variant in spec.md §3.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every Statement variant in spec.md §3.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by every Declaration variant in spec.md §3.
type Decl interface {
	Node
	declNode()
}

// base carries the common position field embedded by every concrete node.
type base struct {
	Position token.Position
}

func (b base) Pos() token.Position { return b.Position }

// Equal reports whether two nodes have the same dynamic type and the same
// structural content. Source positions are deliberately excluded from the
// comparison: two trees parsed from different occurrences of equivalent
// source should compare equal, which is what the round-trip and
// right-associativity properties in spec.md §8 need.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Ident:
		bv, ok := b.(*Ident)
		return ok && av.Name == bv.Name
	case *Literal:
		bv, ok := b.(*Literal)
		return ok && av.Kind == bv.Kind && av.Lexeme == bv.Lexeme
	case *Unary:
		bv, ok := b.(*Unary)
		return ok && av.Op == bv.Op && Equal(av.Operand, bv.Operand)
	case *Binary:
		bv, ok := b.(*Binary)
		return ok && av.Op == bv.Op && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *Selector:
		bv, ok := b.(*Selector)
		return ok && Equal(av.Receiver, bv.Receiver) && Equal(av.Field, bv.Field)
	case *Index:
		bv, ok := b.(*Index)
		return ok && Equal(av.Receiver, bv.Receiver) && Equal(av.Index, bv.Index)
	case *Call:
		bv, ok := b.(*Call)
		return ok && Equal(av.Callee, bv.Callee) && equalExprs(av.Args, bv.Args)
	case *KeyValue:
		bv, ok := b.(*KeyValue)
		return ok && Equal(av.Key, bv.Key) && Equal(av.Value, bv.Value)
	case *KeyValueList:
		bv, ok := b.(*KeyValueList)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for i := range av.Entries {
			if !Equal(av.Entries[i], bv.Entries[i]) {
				return false
			}
		}
		return true
	case *Array:
		bv, ok := b.(*Array)
		return ok && equalExprs(av.Elements, bv.Elements)
	case *ArrayType:
		bv, ok := b.(*ArrayType)
		return ok && Equal(av.ElementType, bv.ElementType) && Equal(av.Length, bv.Length)
	case *Return:
		bv, ok := b.(*Return)
		return ok && Equal(av.Value, bv.Value)
	case *Block:
		bv, ok := b.(*Block)
		if !ok || len(av.Body) != len(bv.Body) {
			return false
		}
		for i := range av.Body {
			if !Equal(av.Body[i], bv.Body[i]) {
				return false
			}
		}
		return true
	case *If:
		bv, ok := b.(*If)
		return ok && Equal(av.Cond, bv.Cond) && Equal(av.Then, bv.Then) && Equal(av.Else, bv.Else)
	case *For:
		bv, ok := b.(*For)
		return ok && Equal(av.Init, bv.Init) && Equal(av.Cond, bv.Cond) &&
			Equal(av.Post, bv.Post) && Equal(av.Body, bv.Body)
	case *Declare:
		bv, ok := b.(*Declare)
		return ok && Equal(av.Dcl, bv.Dcl)
	case *Assign:
		bv, ok := b.(*Assign)
		return ok && Equal(av.Target, bv.Target) && av.Op == bv.Op && Equal(av.Value, bv.Value)
	case *Variable:
		bv, ok := b.(*Variable)
		return ok && Equal(av.Name, bv.Name) && Equal(av.ExplicitType, bv.ExplicitType) &&
			Equal(av.Initializer, bv.Initializer)
	case *Argument:
		bv, ok := b.(*Argument)
		return ok && Equal(av.Type, bv.Type) && Equal(av.Name, bv.Name)
	case *Function:
		bv, ok := b.(*Function)
		if !ok || len(av.Args) != len(bv.Args) || !Equal(av.Name, bv.Name) ||
			!Equal(av.ReturnType, bv.ReturnType) || !Equal(av.Body, bv.Body) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *File:
		bv, ok := b.(*File)
		if !ok || len(av.Decls) != len(bv.Decls) {
			return false
		}
		for i := range av.Decls {
			if !Equal(av.Decls[i], bv.Decls[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ---- Expressions ----

// Ident is a name reference. Resolved is filled in at parse time by scope
// lookup and left nil when the lookup fails — the parser does not itself
// reject unresolved identifiers (spec.md §3 invariants).
type Ident struct {
	base
	Name     string
	Resolved *object.Object
}

func NewIdent(pos token.Position, name string) *Ident {
	return &Ident{base: base{pos}, Name: name}
}

func (i *Ident) exprNode()      {}
func (i *Ident) String() string { return i.Name }

// Literal is a scalar constant carried verbatim as its source lexeme; the
// parser does not interpret the lexeme into a machine number (spec.md §4.4
// notes that is a later-pass concern).
type Literal struct {
	base
	Kind   token.Kind
	Lexeme string
}

func NewLiteral(pos token.Position, kind token.Kind, lexeme string) *Literal {
	return &Literal{base: base{pos}, Kind: kind, Lexeme: lexeme}
}

func (l *Literal) exprNode()      {}
func (l *Literal) String() string { return l.Lexeme }

// Unary is a prefix operator application: NOT or SUB.
type Unary struct {
	base
	Op      token.Kind
	Operand Expr
}

func NewUnary(pos token.Position, op token.Kind, operand Expr) *Unary {
	return &Unary{base: base{pos}, Op: op, Operand: operand}
}

func (u *Unary) exprNode() {}
func (u *Unary) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand)
}

// Binary is a two-operand operator application. It is also used
// transiently to hold an assignment/declare expression before
// parseStatement rewrites it into an Assign or Declare statement — see
// spec.md §9's "assignment-as-expression rewrite" note.
type Binary struct {
	base
	Op    token.Kind
	Left  Expr
	Right Expr
}

func NewBinary(pos token.Position, op token.Kind, left, right Expr) *Binary {
	return &Binary{base: base{pos}, Op: op, Left: left, Right: right}
}

func (bn *Binary) exprNode() {}
func (bn *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", bn.Left, bn.Op, bn.Right)
}

// Selector is a `.` member access: Receiver.Field.
type Selector struct {
	base
	Receiver Expr
	Field    Expr
}

func NewSelector(pos token.Position, receiver, field Expr) *Selector {
	return &Selector{base: base{pos}, Receiver: receiver, Field: field}
}

func (s *Selector) exprNode() {}
func (s *Selector) String() string {
	return fmt.Sprintf("%s.%s", s.Receiver, s.Field)
}

// Index is a `[ ]` postfix application: Receiver[Index].
type Index struct {
	base
	Receiver Expr
	Index    Expr
}

func NewIndex(pos token.Position, receiver, index Expr) *Index {
	return &Index{base: base{pos}, Receiver: receiver, Index: index}
}

func (ix *Index) exprNode() {}
func (ix *Index) String() string {
	return fmt.Sprintf("%s[%s]", ix.Receiver, ix.Index)
}

// Call is a function application: Callee(Args...).
type Call struct {
	base
	Callee Expr
	Args   []Expr
}

func NewCall(pos token.Position, callee Expr) *Call {
	return &Call{base: base{pos}, Callee: callee}
}

func (c *Call) exprNode() {}
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(parts, ", "))
}

// KeyValue is one entry of a KeyValueList. Key is nil when the entry came
// from a bare value (array-literal style) rather than a `key: value` pair.
type KeyValue struct {
	base
	Key   Expr // optional
	Value Expr
}

func NewKeyValue(pos token.Position, key, value Expr) *KeyValue {
	return &KeyValue{base: base{pos}, Key: key, Value: value}
}

func (kv *KeyValue) exprNode() {}
func (kv *KeyValue) String() string {
	if kv.Key == nil {
		return kv.Value.String()
	}
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// KeyValueList is a brace-delimited literal: `{ k: v, v2, ... }`.
type KeyValueList struct {
	base
	Entries []*KeyValue
}

func NewKeyValueList(pos token.Position) *KeyValueList {
	return &KeyValueList{base: base{pos}}
}

func (kvl *KeyValueList) exprNode() {}
func (kvl *KeyValueList) String() string {
	parts := make([]string, len(kvl.Entries))
	for i, e := range kvl.Entries {
		parts[i] = e.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// Array is a bracket-delimited literal: `[e1, e2, ...]`.
type Array struct {
	base
	Elements []Expr
}

func NewArray(pos token.Position) *Array {
	return &Array{base: base{pos}}
}

func (a *Array) exprNode() {}
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// ArrayType is a type expression of the form `ElementType[Length]`.
type ArrayType struct {
	base
	ElementType Expr
	Length      Expr
}

func (at *ArrayType) exprNode() {}
func (at *ArrayType) String() string {
	return fmt.Sprintf("%s[%s]", at.ElementType, at.Length)
}
