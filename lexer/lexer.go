package lexer

import (
	"fmt"
	"unicode/utf8"
)

const eof rune = -1

type lexer struct {
	input string     // The input string to lex
	start int        // The start of the current token in input
	sline int        // Source line the current token starts on
	pos   int        // The pos of the cursor in input
	line  int        // Source line of the cursor, 1-based
	width int        // Width of the last rune lexed
	Out   chan Token // Token output channel
}

func New(input string) *lexer {
	return &lexer{
		input: input,
		sline: 1,
		line:  1,
		Out:   make(chan Token),
	}
}

func (l *lexer) Run() {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	close(l.Out)
}

func (l *lexer) emit(t TokenType) {
	l.Out <- Token{t, l.input[l.start:l.pos], l.sline}
	l.mark()
}

// mark drops the text lexed so far, making the cursor the start of the
// next token.
func (l *lexer) mark() {
	l.start = l.pos
	l.sline = l.line
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
	if l.width > 0 && l.input[l.pos] == '\n' {
		l.line--
	}
}

func (l *lexer) errorf(format string, args ...any) lexFn {
	l.Out <- Token{
		Kind: TokError,
		Val:  fmt.Sprintf(format, args...),
		Line: l.sline,
	}
	return nil
}
