/*
File    : furc/parser/parser.go

Package parser implements the fur language's parser core: a Pratt
expression parser plus a recursive-descent statement/declaration/file
parser, with identifiers resolved against a lexically scoped Object table
as soon as they are parsed (spec.md §3, §4).

The structural shape — a Parser struct holding two-token lookahead, a
table of per-Kind prefix/infix handlers built in a constructor, and small
per-construct methods for each statement/declaration form — is grounded on
the teacher's parser.go/parser_*.go files, which register their unary/
binary parse functions the same way; the algorithms themselves follow
_examples/original_source/src/parser.c, the literal source this spec was
distilled from.
*/
package parser

import (
	"github.com/hashicorp/go-hclog"

	"github.com/akashmaji946/furc/ast"
	"github.com/akashmaji946/furc/object"
	"github.com/akashmaji946/furc/perr"
	"github.com/akashmaji946/furc/scope"
	"github.com/akashmaji946/furc/token"
)

// Token is the minimal shape the parser needs from a lexer; any producer
// (including package fixlex, used by this module's own tests) that yields
// a []Token satisfies this, so the parser never imports a concrete lexer.
type Token = token.Token

// prefixFunc parses an expression that starts with the current token (a
// "nud" — null denotation — in Pratt-parser terminology).
type prefixFunc func(p *Parser) (ast.Expr, error)

// infixFunc continues parsing an expression given the already-parsed left
// operand (a "led" — left denotation).
type infixFunc func(p *Parser, left ast.Expr) (ast.Expr, error)

// Parser holds all parsing state: the token stream with two-token
// lookahead, the nud/led dispatch tables, and the current scope chain.
type Parser struct {
	tokens []Token
	pos    int // index of cur in tokens

	cur  Token
	next Token

	prefix map[token.Kind]prefixFunc
	infix  map[token.Kind]infixFunc

	scope *scope.Scope
	log   hclog.Logger
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger installs logger for Trace-level scope and dispatch tracing.
// The default is a null logger, matching SPEC_FULL.md's "no configuration
// surface beyond this" design point.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Parser) { p.log = logger }
}

// New builds a Parser over tokens. tokens are expected to end in exactly
// one token.END (spec.md §3); once the slice is exhausted, advance keeps
// supplying END tokens, so an END-less stream reads as if it ended in END.
func New(tokens []Token, opts ...Option) *Parser {
	p := &Parser{
		tokens: tokens,
		log:    hclog.NewNullLogger(),
		scope:  scope.New(nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.registerPrefix()
	p.registerInfix()
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.cur = p.next
	if p.pos < len(p.tokens) {
		p.next = p.tokens[p.pos]
		p.pos++
	} else {
		p.next = Token{Kind: token.END}
	}
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

// expect consumes the current token if it has kind k, else returns an
// ErrUnexpectedToken positioned at the offending token.
func (p *Parser) expect(k token.Kind) (Token, error) {
	if !p.at(k) {
		return Token{}, perr.New(perr.ErrUnexpectedToken, p.cur.Pos,
			"expected %s, found %s", k, p.cur.Kind)
	}
	t := p.cur
	p.advance()
	return t, nil
}

// expectIdent consumes an IDENT token and returns an *ast.Ident for it,
// without performing any scope resolution (callers decide whether the
// identifier is a binding occurrence or a use occurrence).
func (p *Parser) expectIdent() (*ast.Ident, error) {
	t, err := p.expect(token.IDENT)
	if err != nil {
		return nil, perr.New(perr.ErrExpectedIdent, p.cur.Pos, "%s", err)
	}
	return ast.NewIdent(t.Pos, t.Lexeme), nil
}

// pushScope enters a new lexical scope nested under the current one.
func (p *Parser) pushScope() {
	p.log.Trace("push scope")
	p.scope = scope.New(p.scope)
}

// popScope leaves the current scope, restoring its parent.
func (p *Parser) popScope() {
	p.log.Trace("pop scope")
	p.scope = p.scope.Parent
}

// bind installs obj in the current scope, surfacing Redefinition if the
// name is already bound there (spec.md §3 invariant).
func (p *Parser) bind(obj *object.Object, pos token.Position) error {
	if !p.scope.Insert(obj) {
		return perr.New(perr.ErrRedefinition, pos, "%q already declared in this scope", obj.Name)
	}
	return nil
}

// resolve looks up name in the current scope chain and, if found, records
// the binding on ident. An unresolved name is not itself a parse error
// (spec.md §3): Resolved is simply left nil.
func (p *Parser) resolve(ident *ast.Ident) {
	if obj, ok := p.scope.Lookup(ident.Name); ok {
		ident.Resolved = obj
	}
}

// ParseFile parses the entire token stream as a sequence of top-level
// declarations (spec.md §4.7).
func (p *Parser) ParseFile() (*ast.File, error) {
	file := &ast.File{}
	for !p.at(token.END) {
		decl, err := p.parseTopLevelDecl()
		if err != nil {
			return nil, err
		}
		file.Decls = append(file.Decls, decl)
	}
	return file, nil
}
