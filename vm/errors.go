package vm

import (
	"fmt"

	"github.com/MrEasybutton/BAUx2/ast"
)

// NameError is a reference to a variable that is not declared anywhere
// in the scope chain.
type NameError struct {
	Name string
}

func (e NameError) Error() string {
	return fmt.Sprintf("Variable ‘%s’ could not be found in scope", e.Name)
}

// RedeclarationError is a second declaration of a name within the same
// scope.
type RedeclarationError struct {
	Name string
}

func (e RedeclarationError) Error() string {
	return fmt.Sprintf("Variable ‘%s’ is already declared in this scope", e.Name)
}

// UndeclaredVariableError is a reassignment whose target was never
// declared.
type UndeclaredVariableError struct {
	Name string
}

func (e UndeclaredVariableError) Error() string {
	return fmt.Sprintf("Cannot reassign undeclared variable ‘%s’", e.Name)
}

// TypeMismatchError is a declaration or reassignment whose value does
// not match the declared variant.
type TypeMismatchError struct {
	Name string
	Want ast.Type
	Got  ast.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Variable ‘%s’ is of type %s but the value is of type %s",
		e.Name, e.Want, e.Got)
}

// TypeError is a comparison or condition over incompatible variants
type TypeError struct {
	Msg string
}

func (e TypeError) Error() string {
	return e.Msg
}

// ArithmeticError is a numeric fault during expression evaluation, such
// as division by zero.
type ArithmeticError struct {
	Msg string
}

func (e ArithmeticError) Error() string {
	return e.Msg
}

// ExpressionError is a malformed expression inside a quoted payload.
// Expression text is opaque until run time, so this surfaces during
// execution rather than parsing.
type ExpressionError struct {
	Msg string
}

func (e ExpressionError) Error() string {
	return e.Msg
}

// statementError ties a runtime fault to the statement it occurred on
type statementError struct {
	line int
	err  error
}

func (e statementError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.line, e.err)
}

func (e statementError) Unwrap() error {
	return e.err
}
