/*
File    : furc/parser/decl.go

The declaration parser (spec.md §4.6): `proc` and `var` forms, including
the two-phase installation that lets a function call itself — its own
Object is bound in the enclosing scope before its body (and so its own
recursive calls) are parsed. Grounded on the teacher's
parser_functions.go for the Go shape of the code and on
_examples/original_source/src/parser.c's ParseFunction/ParseVar/
ParseDeclaration for the exact two-phase-installation semantics.
*/
package parser

import (
	"github.com/akashmaji946/furc/ast"
	"github.com/akashmaji946/furc/object"
	"github.com/akashmaji946/furc/perr"
	"github.com/akashmaji946/furc/token"
)

// parseTopLevelDecl dispatches the two legal top-level declaration forms.
func (p *Parser) parseTopLevelDecl() (ast.Decl, error) {
	p.log.Trace("parse declaration", "token", p.cur.Kind.String())
	switch p.cur.Kind {
	case token.PROC:
		return p.parseFunction()
	case token.VAR:
		v, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, perr.New(perr.ErrExpectedTopLevelDecl, p.cur.Pos, "found %s", p.cur.Kind)
	}
}

// parseVarDecl parses `var Type name = expr` (no trailing SEMI — callers
// decide whether one is required, since the same grammar is shared between
// a top-level declaration and a `var` statement).
func (p *Parser) parseVarDecl() (*ast.Variable, error) {
	pos := p.cur.Pos
	p.advance() // consume 'var'

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, perr.New(perr.ErrExpectedAssign, p.cur.Pos, "var declaration requires an initializer")
	}
	init, err := p.parseExpression(lbpAssign)
	if err != nil {
		return nil, err
	}

	v := &ast.Variable{Name: name, ExplicitType: typ, Initializer: init}
	if err := p.bind(object.New(name.Name, object.Var, v), pos); err != nil {
		return nil, err
	}
	return v, nil
}

// parseFunction parses `proc name :: Type name, ... -> ReturnType { body }`.
// The function's own Object is installed in the *enclosing* scope before
// its argument scope is pushed, so a call to itself inside body resolves
// (spec.md §4.6's two-phase installation, and spec.md §8's forward
// self-reference property).
func (p *Parser) parseFunction() (ast.Decl, error) {
	pos := p.cur.Pos
	p.advance() // consume 'proc'

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	fn := &ast.Function{Name: name}
	if err := p.bind(object.New(name.Name, object.Func, fn), pos); err != nil {
		return nil, err
	}

	p.pushScope()
	defer p.popScope()

	if _, err := p.expect(token.DOUBLE_COLON); err != nil {
		return nil, err
	}
	for !p.at(token.ARROW) {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	fn.ReturnType = retType

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

// parseArgument parses one `Type name` formal parameter and binds it into
// the function's argument scope.
func (p *Parser) parseArgument() (*ast.Argument, error) {
	pos := p.cur.Pos
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	arg := &ast.Argument{Type: typ, Name: name}
	if err := p.bind(object.New(name.Name, object.Arg, arg), pos); err != nil {
		return nil, err
	}
	return arg, nil
}
