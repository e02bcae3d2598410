package vm

import "github.com/MrEasybutton/BAUx2/ast"

// environment is one scope in the chain.  Conditional branches, loop
// iterations, and sections each get a child scope; its declarations die
// with it.
type environment struct {
	vars   map[string]Value
	parent *environment
}

func newEnvironment(parent *environment) *environment {
	return &environment{
		vars:   make(map[string]Value, 8),
		parent: parent,
	}
}

// declare binds a fresh name in the current scope only
func (e *environment) declare(name string, v Value) error {
	if _, ok := e.vars[name]; ok {
		return RedeclarationError{name}
	}
	e.vars[name] = v
	return nil
}

// reassign replaces the value of the nearest enclosing declaration.  The
// new value must keep the declared variant.
func (e *environment) reassign(name string, v Value) error {
	for s := e; s != nil; s = s.parent {
		old, ok := s.vars[name]
		if !ok {
			continue
		}
		if old.Type() != v.Type() {
			return TypeMismatchError{name, old.Type(), v.Type()}
		}
		s.vars[name] = v
		return nil
	}
	return UndeclaredVariableError{name}
}

// lookup searches the scope chain innermost to outermost
func (e *environment) lookup(name string) (Value, error) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, nil
		}
	}
	return nil, NameError{name}
}

// typeOf reports the declared variant of a name, for interpreting a
// reassignment payload before committing it.
func (e *environment) typeOf(name string) (ast.Type, error) {
	v, err := e.lookup(name)
	if err != nil {
		return 0, UndeclaredVariableError{name}
	}
	return v.Type(), nil
}
