package fixlex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/furc/fixlex"
	"github.com/akashmaji946/furc/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeEndsInEND(t *testing.T) {
	toks := fixlex.Tokenize("100")
	assert.Equal(t, token.END, toks[len(toks)-1].Kind)
}

func TestTokenizeSimpleExpression(t *testing.T) {
	toks := fixlex.Tokenize("foo + bar")
	assert.Equal(t, []token.Kind{token.IDENT, token.ADD, token.IDENT, token.END}, kinds(toks))
	assert.Equal(t, "foo", toks[0].Lexeme)
	assert.Equal(t, "bar", toks[2].Lexeme)
}

func TestTokenizeHexAndOctalAreNormalized(t *testing.T) {
	toks := fixlex.Tokenize("0x1000 0755")
	assert.Equal(t, token.HEX, toks[0].Kind)
	assert.Equal(t, "1000", toks[0].Lexeme)
	assert.Equal(t, token.OCTAL, toks[1].Kind)
	assert.Equal(t, "755", toks[1].Lexeme)
}

func TestTokenizeCallExpression(t *testing.T) {
	toks := fixlex.Tokenize("a(1 + 2, a - b)")
	assert.Equal(t, []token.Kind{
		token.IDENT, token.LPAREN,
		token.INT, token.ADD, token.INT, token.COMMA,
		token.IDENT, token.SUB, token.IDENT,
		token.RPAREN, token.END,
	}, kinds(toks))
}

func TestTokenizeKeywordsAndDefine(t *testing.T) {
	toks := fixlex.Tokenize("for a := 0; a < 10; a++ { }")
	assert.Equal(t, []token.Kind{
		token.FOR, token.IDENT, token.DEFINE, token.INT, token.SEMI,
		token.IDENT, token.LSS, token.INT, token.SEMI,
		token.IDENT, token.INC, token.LBRACE, token.RBRACE, token.END,
	}, kinds(toks))
}

func TestTokenizeString(t *testing.T) {
	toks := fixlex.Tokenize(`"hello\nworld"`)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hellonworld", toks[0].Lexeme[:11]) // the backslash is dropped; the escaped character is kept as is
}

func TestTokenizeLineAndColumnTracking(t *testing.T) {
	toks := fixlex.Tokenize("a\nb")
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 2, toks[1].Pos.Line)
}
