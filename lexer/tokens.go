package lexer

import "fmt"

type TokenType int

const (
	// TokError is the token emitted during a lexing error.  It signals the
	// end of lexical analysis.
	TokError TokenType = iota

	TokEndStmt // End of statement, a newline
	TokEof     // End of file

	TokWord   // A bare word: keyword, identifier, or literal
	TokString // The contents of a double-quoted string

	TokBcOpen  // The ‘{’ block marker
	TokBcClose // The ‘}’ block marker
)

type Token struct {
	Kind TokenType
	Val  string
	Line int
}

// Maximum length of a string before truncation in diagnostics printing
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "Error: " + t.Val

	case TokEndStmt:
		return "end of statement"
	case TokEof:
		return "end of file"

	case TokWord:
		return fmt.Sprintf("‘%s’", t.Val)
	case TokString:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("\"%.*s…\"", maxStrLen, t.Val)
		}
		return fmt.Sprintf("\"%s\"", t.Val)

	case TokBcOpen:
		return "‘{’"
	case TokBcClose:
		return "‘}’"
	}

	panic("unreachable")
}

// LexError is a structural failure in the raw source text, such as an
// unterminated string.
type LexError struct {
	Line int
	Msg  string
}

func (e LexError) Error() string {
	return fmt.Sprintf("Lex error on line %d: %s", e.Line, e.Msg)
}
