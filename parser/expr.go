/*
File    : furc/parser/expr.go

The Pratt expression parser (spec.md §4.3). registerPrefix/registerInfix
build the nud/led dispatch tables exactly the way the teacher's
registerUnaryFuncs/registerBinaryFuncs do (one function-table entry per
token.Kind), and parseExpression is the textbook precedence-climbing loop
described in _examples/original_source/src/parser.c's ParseExpression.
*/
package parser

import (
	"github.com/akashmaji946/furc/ast"
	"github.com/akashmaji946/furc/perr"
	"github.com/akashmaji946/furc/token"
)

func (p *Parser) registerPrefix() {
	p.prefix = map[token.Kind]prefixFunc{
		token.IDENT:  (*Parser).parseIdentExpr,
		token.INT:    parseLiteral,
		token.FLOAT:  parseLiteral,
		token.HEX:    parseLiteral,
		token.OCTAL:  parseLiteral,
		token.STRING: parseLiteral,

		token.NOT: (*Parser).parseUnary,
		token.SUB: (*Parser).parseUnary,

		token.LPAREN: (*Parser).parseGroup,
		token.LBRACK: (*Parser).parseArray,
		token.LBRACE: (*Parser).parseKeyValueList,
	}
}

func (p *Parser) registerInfix() {
	p.infix = map[token.Kind]infixFunc{
		token.EQL: (*Parser).parseBinary,
		token.NEQ: (*Parser).parseBinary,
		token.LSS: (*Parser).parseBinary,
		token.GTR: (*Parser).parseBinary,
		token.LEQ: (*Parser).parseBinary,
		token.GEQ: (*Parser).parseBinary,
		token.ADD: (*Parser).parseBinary,
		token.SUB: (*Parser).parseBinary,
		token.MUL: (*Parser).parseBinary,
		token.QUO: (*Parser).parseBinary,
		token.REM: (*Parser).parseBinary,

		// Right-associative: LAND/LOR and every assignment kind (spec.md
		// §4.3's led table groups these together under `bp - 1`).
		token.LOR:  (*Parser).parseRightAssoc,
		token.LAND: (*Parser).parseRightAssoc,

		token.ASSIGN:     (*Parser).parseRightAssoc,
		token.DEFINE:     (*Parser).parseRightAssoc,
		token.ADD_ASSIGN: (*Parser).parseRightAssoc,
		token.SUB_ASSIGN: (*Parser).parseRightAssoc,
		token.MUL_ASSIGN: (*Parser).parseRightAssoc,
		token.REM_ASSIGN: (*Parser).parseRightAssoc,
		token.OR_ASSIGN:  (*Parser).parseRightAssoc,
		token.SHL_ASSIGN: (*Parser).parseRightAssoc,
		token.SHR_ASSIGN: (*Parser).parseRightAssoc,

		token.LPAREN: (*Parser).parseCall,
		token.LBRACK: (*Parser).parseIndex,
		token.PERIOD: (*Parser).parseSelector,

		// [9.1] LBRACE has no legitimate infix meaning; registering it
		// here (rather than leaving it unregistered) lets the main loop
		// report a precise ErrBraceInitUnsupported instead of silently
		// stopping the expression short.
		token.LBRACE: (*Parser).parseBraceInfix,
	}
}

// parseExpression is the core precedence-climbing loop: parse a prefix
// expression, then keep absorbing infix operators whose LBP exceeds
// minLbp.
func (p *Parser) parseExpression(minLbp int) (ast.Expr, error) {
	prefix, ok := p.prefix[p.cur.Kind]
	if !ok {
		return nil, perr.New(perr.ErrExpectedPrefix, p.cur.Pos, "found %s", p.cur.Kind)
	}
	left, err := prefix(p)
	if err != nil {
		return nil, err
	}

	for lbp(p.cur.Kind) > minLbp {
		infix, ok := p.infix[p.cur.Kind]
		if !ok {
			return nil, perr.New(perr.ErrExpectedInfix, p.cur.Pos, "found %s", p.cur.Kind)
		}
		left, err = infix(p, left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// ---- prefix (nud) handlers ----

func (p *Parser) parseIdentExpr() (ast.Expr, error) {
	ident, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	p.resolve(ident)
	return ident, nil
}

func parseLiteral(p *Parser) (ast.Expr, error) {
	t := p.cur
	p.advance()
	return ast.NewLiteral(t.Pos, t.Kind, t.Lexeme), nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	op := p.cur
	p.advance()
	operand, err := p.parseExpression(lbpUnary)
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(op.Pos, op.Kind, operand), nil
}

func (p *Parser) parseGroup() (ast.Expr, error) {
	p.advance() // consume '('
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseArray parses `[e1, e2, ...]`, spec.md §4.3's Array literal.
func (p *Parser) parseArray() (ast.Expr, error) {
	arr := ast.NewArray(p.cur.Pos)
	p.advance() // consume '['
	for !p.at(token.RBRACK) {
		el, err := p.parseExpression(lbpAssign)
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, el)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseKeyValueList parses `{ k: v, v2, ... }` (spec.md §4.3, §9's
// key-value-list growth note — here just a slice built with append).
// Entries without a `key:` prefix get Key == nil.
func (p *Parser) parseKeyValueList() (ast.Expr, error) {
	kvl := ast.NewKeyValueList(p.cur.Pos)
	p.advance() // consume '{'
	for !p.at(token.RBRACE) {
		entryPos := p.cur.Pos
		first, err := p.parseExpression(lbpAssign)
		if err != nil {
			return nil, err
		}
		var key, value ast.Expr
		if p.at(token.COLON) {
			p.advance()
			value, err = p.parseExpression(lbpAssign)
			if err != nil {
				return nil, err
			}
			key = first
		} else {
			value = first
		}
		kvl.Entries = append(kvl.Entries, ast.NewKeyValue(entryPos, key, value))
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return kvl, nil
}

// ---- infix (led) handlers ----

func (p *Parser) parseBinary(left ast.Expr) (ast.Expr, error) {
	op := p.cur
	bindingPower := lbp(op.Kind)
	p.advance()
	right, err := p.parseExpression(bindingPower)
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(op.Pos, op.Kind, left, right), nil
}

// parseRightAssoc parses the right-hand side of a right-associative
// operator at bp-1, so a chain like `a = b = c` or `a || b || c` associates
// to the right (spec.md §4.3's right-associative led row, §8 invariant 2).
// Covers LAND, LOR, and every assignment kind, including DEFINE. For the
// assignment kinds the result is a transient *ast.Binary; the statement
// parser is what turns it into an Assign or Declare.
func (p *Parser) parseRightAssoc(left ast.Expr) (ast.Expr, error) {
	op := p.cur
	bindingPower := lbp(op.Kind)
	p.advance()
	right, err := p.parseExpression(bindingPower - 1)
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(op.Pos, op.Kind, left, right), nil
}

func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	pos := p.cur.Pos
	p.advance() // consume '('
	call := ast.NewCall(pos, callee)
	for !p.at(token.RPAREN) {
		arg, err := p.parseExpression(lbpAssign)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) parseIndex(receiver ast.Expr) (ast.Expr, error) {
	pos := p.cur.Pos
	p.advance() // consume '['
	idx, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return ast.NewIndex(pos, receiver, idx), nil
}

func (p *Parser) parseSelector(receiver ast.Expr) (ast.Expr, error) {
	pos := p.cur.Pos
	p.advance() // consume '.'
	field, err := p.parseExpression(lbpPostfix)
	if err != nil {
		return nil, err
	}
	return ast.NewSelector(pos, receiver, field), nil
}

// parseBraceInfix is the [9.1] fix: a brace appearing in infix position
// (e.g. `foo {`) has no defined meaning in fur and is rejected outright,
// where the original silently printed a diagnostic and dropped the node.
func (p *Parser) parseBraceInfix(ast.Expr) (ast.Expr, error) {
	return nil, perr.New(perr.ErrBraceInitUnsupported, p.cur.Pos, "")
}
