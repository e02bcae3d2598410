package lexer

import "unicode"

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		l.mark()
		switch r := l.next(); {
		case r == eof:
			l.emit(TokEof)
			return nil
		case r == '\n':
			l.emit(TokEndStmt)
		case r == ';':
			return lexComment
		case r == '"':
			return lexString
		case r == '{':
			l.emit(TokBcOpen)
		case r == '}':
			l.emit(TokBcClose)
		case unicode.IsSpace(r):
		default:
			l.backup()
			return lexWord
		}
	}
}

func lexComment(l *lexer) lexFn {
	for {
		if r := l.next(); r == '\n' || r == eof {
			l.backup()
			return lexDefault
		}
	}
}

func lexWord(l *lexer) lexFn {
	l.mark()
	for {
		if r := l.next(); r == eof || unicode.IsSpace(r) || IsMetaChar(r) {
			l.backup()
			l.emit(TokWord)
			return lexDefault
		}
	}
}

// lexString is entered after the opening quote has been consumed.  The
// contents are kept raw; whether they are literal text or an expression
// is decided much later by the executor.
func lexString(l *lexer) lexFn {
	l.mark()

	for {
		switch l.next() {
		case eof, '\n':
			l.backup()
			return l.errorf("unterminated string: ‘%s’", l.input[l.start:l.pos])
		case '"':
			l.backup()
			l.emit(TokString)
			l.next() // Consume closing quote
			l.mark()
			return lexDefault
		}
	}
}
