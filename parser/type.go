package parser

import (
	"github.com/akashmaji946/furc/ast"
	"github.com/akashmaji946/furc/token"
)

// parseType parses a type expression: either a bare identifier (`int`,
// `Point`) or an array type `ElementType[Length]` (spec.md §4.4). Types
// are represented with the same Expr nodes as ordinary expressions — fur
// has no separate type grammar, only a separate parsing *entry point* that
// doesn't go through the full Pratt precedence table, since a type never
// contains operators.
func (p *Parser) parseType() (ast.Expr, error) {
	base, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	p.resolve(base)
	var result ast.Expr = base
	for p.at(token.LBRACK) {
		p.advance() // consume '['
		length, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACK); err != nil {
			return nil, err
		}
		result = &ast.ArrayType{ElementType: result, Length: length}
	}
	return result, nil
}
