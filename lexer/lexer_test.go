package lexer

import "testing"

func TestNext(t *testing.T) {
	s := "¢ȠʗǱɓǇϴ¤Ίϑ'щƎcɛǩΟȏɁƅ"
	l := New(s)

	for _, x := range []rune(s) {
		if y := l.next(); x != y {
			t.Fatalf("Expected ‘%c’ but got ‘%c’", x, y)
		}
	}

	if r := l.next(); r != eof {
		t.Fatalf("Expected eof but got ‘%c’", r)
	}
}

func TestLineTracking(t *testing.T) {
	l := New("a\nb\nc")

	for _, x := range []struct {
		r    rune
		line int
	}{
		{'a', 1}, {'\n', 2}, {'b', 2}, {'\n', 3}, {'c', 3},
	} {
		if r := l.next(); r != x.r {
			t.Fatalf("Expected ‘%c’ but got ‘%c’", x.r, r)
		}
		if l.line != x.line {
			t.Fatalf("Expected line %d but got %d", x.line, l.line)
		}
	}

	l.backup()
	if l.line != 3 {
		t.Fatalf("Expected line 3 after backup but got %d", l.line)
	}
}

func lexAll(s string) []Token {
	l := New(s)
	go l.Run()

	toks := []Token{}
	for t := range l.Out {
		toks = append(toks, t)
	}
	return toks
}

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens but got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected token %d to be %v but got %v", i, want[i], got[i])
		}
	}
}

func TestLexStatement(t *testing.T) {
	toks := lexAll("WA MOE result \"5 * 111\"\nBAU result")
	assertTokens(t, toks, []Token{
		{TokWord, "WA", 1},
		{TokWord, "MOE", 1},
		{TokWord, "result", 1},
		{TokString, "5 * 111", 1},
		{TokEndStmt, "\n", 1},
		{TokWord, "BAU", 2},
		{TokWord, "result", 2},
		{TokEof, "", 2},
	})
}

func TestLexBraces(t *testing.T) {
	toks := lexAll("PE FLUFFY { BAU \"Mogojan\" } RO { BAU \"Mango Jam\" }")
	assertTokens(t, toks, []Token{
		{TokWord, "PE", 1},
		{TokWord, "FLUFFY", 1},
		{TokBcOpen, "{", 1},
		{TokWord, "BAU", 1},
		{TokString, "Mogojan", 1},
		{TokBcClose, "}", 1},
		{TokWord, "RO", 1},
		{TokBcOpen, "{", 1},
		{TokWord, "BAU", 1},
		{TokString, "Mango Jam", 1},
		{TokBcClose, "}", 1},
		{TokEof, "", 1},
	})
}

func TestLexComment(t *testing.T) {
	toks := lexAll("BAU x ; the rest is ignored\nBAU y")
	assertTokens(t, toks, []Token{
		{TokWord, "BAU", 1},
		{TokWord, "x", 1},
		{TokEndStmt, "\n", 1},
		{TokWord, "BAU", 2},
		{TokWord, "y", 2},
		{TokEof, "", 2},
	})
}

func TestLexBlankLines(t *testing.T) {
	toks := lexAll("\n\n  \nBAU x\n\n")
	assertTokens(t, toks, []Token{
		{TokEndStmt, "\n", 1},
		{TokEndStmt, "\n", 2},
		{TokEndStmt, "\n", 3},
		{TokWord, "BAU", 4},
		{TokWord, "x", 4},
		{TokEndStmt, "\n", 4},
		{TokEndStmt, "\n", 5},
		{TokEof, "", 6},
	})
}

func TestLexUnterminatedString(t *testing.T) {
	toks := lexAll("BAU x\nBAU \"oh no")
	last := toks[len(toks)-1]

	if last.Kind != TokError {
		t.Fatalf("Expected TokError but got %v", last)
	}
	if last.Line != 2 {
		t.Fatalf("Expected error on line 2 but got line %d", last.Line)
	}
}

func TestLexStringSpanningNewline(t *testing.T) {
	toks := lexAll("BAU \"foo\nbar\"")
	last := toks[len(toks)-1]

	if last.Kind != TokError {
		t.Fatalf("Expected TokError but got %v", last)
	}
}
