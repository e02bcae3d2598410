package parser

import (
	"fmt"

	"github.com/MrEasybutton/BAUx2/lexer"
)

// SyntaxError is an unknown keyword, a malformed statement, or an
// unmatched block marker, reported against the line it occurred on.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error on line %d: %s", e.Line, e.Msg)
}

func errExpected(want string, got lexer.Token) SyntaxError {
	return SyntaxError{
		Line: got.Line,
		Msg:  fmt.Sprintf("Expected %s but got %s", want, got),
	}
}

func errUnclosed(o opener, got lexer.Token) SyntaxError {
	return SyntaxError{
		Line: got.Line,
		Msg: fmt.Sprintf("Expected ‘%s’ to close the ‘%s’ opened on line %d but got %s",
			o.closer, o.keyword, o.line, got),
	}
}
