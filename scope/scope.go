/*
File    : furc/scope/scope.go
*/
package scope

import "github.com/akashmaji946/furc/object"

// Scope is one lexical scope boundary. Scopes form a parent-linked chain
// that mirrors the syntactic nesting of the program being parsed: a new
// Scope is pushed on function entry and on block entry, and popped again
// once the parser leaves that construct (spec.md §3, "Scope & Object
// table").
//
// Lookup walks outward from the current scope to the root; Insert only
// ever touches the current scope, which is what gives inner scopes the
// ability to shadow names bound in an enclosing scope.
type Scope struct {
	Objects map[string]*object.Object
	Parent  *Scope
}

// New creates a scope nested under parent. parent == nil designates the
// file-level (root) scope.
func New(parent *Scope) *Scope {
	return &Scope{
		Objects: make(map[string]*object.Object),
		Parent:  parent,
	}
}

// Lookup searches for name in this scope and, failing that, each enclosing
// scope in turn. It returns (nil, false) if no scope in the chain binds
// the name.
func (s *Scope) Lookup(name string) (*object.Object, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if obj, ok := sc.Objects[name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// Insert binds name to obj in this scope only. It reports ok == false
// without modifying the scope if name is already bound here — that is a
// Redefinition error at the call site, not a shadow, because shadowing is
// only legal across scope boundaries (spec.md §3 invariant: "a name may be
// bound at most once per scope; rebinding the same name in the same scope
// is a Redefinition error").
func (s *Scope) Insert(obj *object.Object) (ok bool) {
	if _, exists := s.Objects[obj.Name]; exists {
		return false
	}
	s.Objects[obj.Name] = obj
	return true
}
