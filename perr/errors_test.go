package perr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/furc/perr"
	"github.com/akashmaji946/furc/token"
)

func TestErrorsIsMatchesSentinel(t *testing.T) {
	err := perr.New(perr.ErrRedefinition, token.Position{Line: 3, Column: 5}, "%q already declared", "x")
	assert.True(t, errors.Is(err, perr.ErrRedefinition))
	assert.False(t, errors.Is(err, perr.ErrUnexpectedToken))
}

func TestErrorMessageIncludesPosition(t *testing.T) {
	err := perr.New(perr.ErrExpectedIdent, token.Position{Line: 1, Column: 2}, "found %s", token.INT)
	assert.Contains(t, err.Error(), "1:2")
	assert.Contains(t, err.Error(), "found INT")
}

func TestErrorWithoutDetail(t *testing.T) {
	err := &perr.Error{Kind: perr.ErrExpectedBlock, Pos: token.Position{Line: 4, Column: 1}}
	assert.Equal(t, "4:1: expected a block", err.Error())
}
