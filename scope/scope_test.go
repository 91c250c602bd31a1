package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/furc/object"
	"github.com/akashmaji946/furc/scope"
)

func TestInsertAndLookup(t *testing.T) {
	root := scope.New(nil)
	obj := object.New("x", object.Var, nil)
	assert.True(t, root.Insert(obj))

	found, ok := root.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, obj, found)
}

func TestInsertDuplicateInSameScopeFails(t *testing.T) {
	root := scope.New(nil)
	assert.True(t, root.Insert(object.New("x", object.Var, nil)))
	assert.False(t, root.Insert(object.New("x", object.Var, nil)))
}

func TestLookupWalksParentChain(t *testing.T) {
	root := scope.New(nil)
	root.Insert(object.New("outer", object.Var, nil))

	child := scope.New(root)
	_, ok := child.Lookup("outer")
	assert.True(t, ok)

	_, ok = child.Lookup("missing")
	assert.False(t, ok)
}

func TestShadowingAcrossScopeBoundaryIsAllowed(t *testing.T) {
	root := scope.New(nil)
	outer := object.New("x", object.Var, nil)
	root.Insert(outer)

	child := scope.New(root)
	inner := object.New("x", object.Var, nil)
	assert.True(t, child.Insert(inner))

	found, _ := child.Lookup("x")
	assert.Same(t, inner, found)

	foundOuter, _ := root.Lookup("x")
	assert.Same(t, outer, foundOuter)
}

func TestLookupMissingFromRoot(t *testing.T) {
	root := scope.New(nil)
	_, ok := root.Lookup("nope")
	assert.False(t, ok)
}
