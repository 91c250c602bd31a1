/*
File    : furc/parser/stmt.go

The statement parser (spec.md §4.5). parseStatement dispatches on the
current token the way the teacher's parser_statements.go / parser_
conditionals.go / parser_loops.go do (a switch over token kind, one method
per construct), falling through to the expression-as-assignment rewrite
_examples/original_source/src/parser.c's smtd function performs for any
leading token that isn't one of the statement keywords.
*/
package parser

import (
	"github.com/akashmaji946/furc/ast"
	"github.com/akashmaji946/furc/object"
	"github.com/akashmaji946/furc/perr"
	"github.com/akashmaji946/furc/token"
)

// parseStatement parses exactly one statement and consumes its trailing
// SEMI where one is required.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	p.log.Trace("parse statement", "token", p.cur.Kind.String())
	switch p.cur.Kind {
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.VAR:
		return p.parseVarStatement()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	p.advance() // consume 'return'
	ret := &ast.Return{}
	if !p.at(token.SEMI) {
		val, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		ret.Value = val
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return ret, nil
}

// parseBlock parses a `{ ... }` statement sequence, pushing a fresh scope
// for its duration (spec.md §3, §5).
func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, perr.New(perr.ErrExpectedBlock, p.cur.Pos, "%s", err)
	}
	p.pushScope()
	defer p.popScope()

	block := &ast.Block{}
	for !p.at(token.RBRACE) && !p.at(token.END) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	p.advance() // consume 'if'
	// [9.1] condition parsing stops at lbpBrace rather than lowest so the
	// block's opening brace is never mistaken for the LBRACE infix.
	cond, err := p.parseExpression(lbpBrace)
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Cond: cond, Then: then}
	if p.at(token.ELSE) {
		p.advance() // consume 'else'
		if p.at(token.IF) {
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			node.Else = elseIf
		} else {
			// [9.3] terminal else, modeled as an If with an absent Cond
			// rather than a separate Else statement variant.
			elseBlock, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			node.Else = &ast.If{Then: elseBlock}
		}
	}
	return node, nil
}

// parseFor parses the single C-style loop form `for init; cond; post { }`.
// Any of the three clauses may be empty, but the two separating SEMIs are
// always required (spec.md §4.5).
func (p *Parser) parseFor() (ast.Stmt, error) {
	p.advance() // consume 'for'
	p.pushScope() // init's variable, if any, is scoped to the whole loop
	defer p.popScope()

	node := &ast.For{}

	if !p.at(token.SEMI) {
		initStmt, err := p.parseSimpleClause()
		if err != nil {
			return nil, err
		}
		decl, ok := initStmt.(*ast.Declare)
		if !ok {
			return nil, perr.New(perr.ErrExpectedStatement, p.cur.Pos,
				"for-loop initializer must be a declaration")
		}
		node.Init = decl
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	if !p.at(token.SEMI) {
		cond, err := p.parseExpression(lbpBrace)
		if err != nil {
			return nil, err
		}
		node.Cond = cond
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	if !p.at(token.LBRACE) {
		post, err := p.parseSimpleClause()
		if err != nil {
			return nil, err
		}
		node.Post = post
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Body = body
	return node, nil
}

// parseVarStatement parses a `var Type name = expr;` statement form,
// shared with the top-level declaration parser's parseVarDecl.
func (p *Parser) parseVarStatement() (ast.Stmt, error) {
	v, err := p.parseVarDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Declare{Dcl: v}, nil
}

// parseSimpleStatement parses a parseSimpleClause followed by its
// terminating SEMI — the ordinary statement-position form.
func (p *Parser) parseSimpleStatement() (ast.Stmt, error) {
	stmt, err := p.parseSimpleClause()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseSimpleClause parses everything that isn't introduced by a
// statement keyword: `name := expr`, `target op= expr`, or the `ident++`/
// `ident--` increment sugar, rewritten to `ident += 1` / `ident -= 1`
// (spec.md §4.5 / §9) — without consuming a
// trailing SEMI, so a for-loop's post clause (directly followed by the
// body's `{`) can share this with ordinary statement position.
func (p *Parser) parseSimpleClause() (ast.Stmt, error) {
	pos := p.cur.Pos

	if p.at(token.IDENT) && (p.next.Kind == token.INC || p.next.Kind == token.DEC) {
		ident, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		p.resolve(ident)
		op := token.ADD_ASSIGN
		if p.at(token.DEC) {
			op = token.SUB_ASSIGN
		}
		one := ast.NewLiteral(p.cur.Pos, token.INT, "1")
		p.advance() // consume ++ / --
		return &ast.Assign{Target: ident, Op: op, Value: one}, nil
	}

	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}

	bin, ok := expr.(*ast.Binary)
	if !ok || !assignKinds[bin.Op] {
		return nil, perr.New(perr.ErrExpectedStatement, pos, "expression is not a valid statement")
	}

	if bin.Op == token.DEFINE {
		name, ok := bin.Left.(*ast.Ident)
		if !ok {
			return nil, perr.New(perr.ErrExpectedIdent, pos, "left side of := must be an identifier")
		}
		v := &ast.Variable{Name: name, Initializer: bin.Right}
		if err := p.bind(object.New(name.Name, object.Var, v), pos); err != nil {
			return nil, err
		}
		return &ast.Declare{Dcl: v}, nil
	}

	return &ast.Assign{Target: bin.Left, Op: bin.Op, Value: bin.Right}, nil
}
