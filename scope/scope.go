/*
File    : eye/scope/scope.go
Project : Eye Language Interpreter
*/
package scope

import "github.com/eye-lang/eye/objects"

// Scope maps identifiers to their current values.
//
// Eye uses a clone-on-enter scoping model rather than a chain of linked
// frames: entering a nested scope (a function call, an if/elif/else body,
// a do-loop body) clones the whole map, and the clone is discarded on
// exit. The consequences are the observable semantics of the language:
//   - inner scopes see every binding that existed at clone time,
//   - shadowing happens by overwriting the cloned entry,
//   - writes made inside a nested scope never leak back to the parent.
//
// Recursion works because the function's own binding was already present
// in the environment captured when the call scope was cloned.
type Scope struct {
	// Variables maps identifier names to their current values
	Variables map[string]objects.EyeObject
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{
		Variables: make(map[string]objects.EyeObject),
	}
}

// LookUp searches for a binding by name.
//
// Returns:
//   - objects.EyeObject: The value bound to the name (if found)
//   - bool: true when the name is bound in this scope
func (s *Scope) LookUp(name string) (objects.EyeObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.EyeObject)
	}
	obj, ok := s.Variables[name]
	return obj, ok
}

// Bind inserts or overwrites a binding in this scope.
// Shadowing occurs by overwrite; there is no redeclaration error.
func (s *Scope) Bind(name string, obj objects.EyeObject) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.EyeObject)
	}
	s.Variables[name] = obj
}

// Clone creates a copy of this scope for entering a nested scope.
//
// The copy is shallow in that map entries reference the same value
// objects, which is safe because Eye values are immutable once created;
// rebinding in the clone replaces the entry without touching the
// original scope.
func (s *Scope) Clone() *Scope {
	clone := &Scope{
		Variables: make(map[string]objects.EyeObject, len(s.Variables)),
	}
	for name, obj := range s.Variables {
		clone.Variables[name] = obj
	}
	return clone
}
