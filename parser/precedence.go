package parser

import "github.com/akashmaji946/furc/token"

// Left-binding powers, highest number binds tightest (spec.md §4.2). The
// table is grounded on the teacher's parser_precedence.go table shape and
// cross-checked against _examples/original_source/src/parser.c's
// BindingPower function, which is the literal source of these numbers.
const (
	lowest            = 0
	lbpBrace          = 5  // LBRACE as an infix: always an error, parsed at low LBP
	lbpAssign         = 10 // =, :=, +=, -=, *=, %=, |=, <<=, >>= — right-associative
	lbpLogical        = 20 // LAND, LOR — right-associative, same level (spec.md §4.2)
	lbpComparison     = 30 // EQL, NEQ, LSS, GTR, LEQ, GEQ — one level, left-assoc
	lbpAdditive       = 40
	lbpMultiplicative = 50
	lbpUnary          = 60 // NOT, SUB in prefix position
	lbpPostfix        = 70 // call, index, selector
)

var lbpTable = map[token.Kind]int{
	token.LBRACE: lbpBrace,

	token.ASSIGN:     lbpAssign,
	token.DEFINE:     lbpAssign,
	token.ADD_ASSIGN: lbpAssign,
	token.SUB_ASSIGN: lbpAssign,
	token.MUL_ASSIGN: lbpAssign,
	token.REM_ASSIGN: lbpAssign,
	token.OR_ASSIGN:  lbpAssign,
	token.SHL_ASSIGN: lbpAssign, // [9.2] both shift-assigns bind here
	token.SHR_ASSIGN: lbpAssign, // [9.2] — the original only did SHL_ASSIGN

	token.LOR:  lbpLogical,
	token.LAND: lbpLogical,

	token.EQL: lbpComparison,
	token.NEQ: lbpComparison,
	token.LSS: lbpComparison,
	token.GTR: lbpComparison,
	token.LEQ: lbpComparison,
	token.GEQ: lbpComparison,

	token.ADD: lbpAdditive,
	token.SUB: lbpAdditive,

	token.MUL: lbpMultiplicative,
	token.QUO: lbpMultiplicative,
	token.REM: lbpMultiplicative,

	token.LPAREN: lbpPostfix,
	token.LBRACK: lbpPostfix,
	token.PERIOD: lbpPostfix,
}

// assignKinds is the set of operator kinds the statement parser rewrites
// a top-level expression into an Assign or Declare statement for (spec.md
// §4.5, §9 "assignment-as-expression rewrite").
var assignKinds = map[token.Kind]bool{
	token.ASSIGN:     true,
	token.DEFINE:     true,
	token.ADD_ASSIGN: true,
	token.SUB_ASSIGN: true,
	token.MUL_ASSIGN: true,
	token.REM_ASSIGN: true,
	token.OR_ASSIGN:  true,
	token.SHL_ASSIGN: true,
	token.SHR_ASSIGN: true,
}

func lbp(k token.Kind) int {
	if v, ok := lbpTable[k]; ok {
		return v
	}
	return lowest
}
