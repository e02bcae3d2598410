package parser

import (
	"fmt"
	"strconv"

	"github.com/MrEasybutton/BAUx2/ast"
	"github.com/MrEasybutton/BAUx2/lexer"
)

func (p *parser) parseProgram() (ast.Program, error) {
	prog := ast.Program{}

	for {
		p.skipEndStmts()
		if p.peek().Kind == lexer.TokEof {
			return prog, nil
		}

		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog = append(prog, s)
	}
}

func (p *parser) parseStatement() (ast.Statement, error) {
	t := p.next()
	switch t.Kind {
	case lexer.TokWord:
	case lexer.TokError:
		return nil, lexErr(t)
	case lexer.TokBcClose:
		if o := p.blocks.Peek(); o != nil {
			return nil, errUnclosed(*o, t)
		}
		return nil, SyntaxError{t.Line, "Unmatched ‘}’"}
	default:
		return nil, errExpected("a keyword", t)
	}

	switch t.Val {
	case "BAU":
		return p.parsePrint(t)
	case "WA":
		return p.parseDeclare(t)
	case "CO":
		return p.parseReassign(t)
	case "PE":
		return p.parseIf(t)
	case "PONDE":
		return p.parseLoop(t)
	case "FUWA":
		return p.parseSection(t)
	case "CHIHUAHUA":
		if err := p.endStmt(); err != nil {
			return nil, err
		}
		return ast.DebugMarker{Line: t.Line}, nil
	case "ROPE", "RO", "ENDPONDE", "MOCO":
		// A closer or continuation with no matching opener.  If some other
		// block is still open, name it; the closing markers of nested
		// blocks are never shared with the enclosing one.
		if o := p.blocks.Peek(); o != nil {
			return nil, errUnclosed(*o, t)
		}
		return nil, SyntaxError{t.Line, fmt.Sprintf("Unmatched ‘%s’", t.Val)}
	}

	return nil, SyntaxError{t.Line, fmt.Sprintf("Unknown keyword ‘%s’", t.Val)}
}

func (p *parser) parsePrint(kw lexer.Token) (ast.Statement, error) {
	arg, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.endStmt(); err != nil {
		return nil, err
	}
	return ast.Print{Arg: arg, Line: kw.Line}, nil
}

func (p *parser) parseDeclare(kw lexer.Token) (ast.Statement, error) {
	t := p.next()
	if t.Kind == lexer.TokError {
		return nil, lexErr(t)
	}
	if t.Kind != lexer.TokWord {
		return nil, errExpected("a type keyword", t)
	}
	typ, ok := ast.TypeFromKeyword(t.Val)
	if !ok {
		return nil, SyntaxError{t.Line, fmt.Sprintf("Unknown type ‘%s’", t.Val)}
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arg, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.endStmt(); err != nil {
		return nil, err
	}
	return ast.Declare{Type: typ, Name: name, Arg: arg, Line: kw.Line}, nil
}

func (p *parser) parseReassign(kw lexer.Token) (ast.Statement, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arg, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.endStmt(); err != nil {
		return nil, err
	}
	return ast.Reassign{Name: name, Arg: arg, Line: kw.Line}, nil
}

func (p *parser) parseIf(kw lexer.Token) (ast.Statement, error) {
	cond, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBraceBody("PE", kw.Line)
	if err != nil {
		return nil, err
	}

	stmt := ast.If{Cond: cond, Body: body, Line: kw.Line}
	for {
		p.skipEndStmts()
		t := p.peek()
		if t.Kind != lexer.TokWord {
			return stmt, nil
		}

		switch t.Val {
		case "ROPE":
			p.next()
			cond, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			body, err := p.parseBraceBody("ROPE", t.Line)
			if err != nil {
				return nil, err
			}
			stmt.Elifs = append(stmt.Elifs, ast.Elif{Cond: cond, Body: body, Line: t.Line})
		case "RO":
			p.next()
			body, err := p.parseBraceBody("RO", t.Line)
			if err != nil {
				return nil, err
			}
			if body == nil {
				body = []ast.Statement{}
			}
			stmt.Else = body
			return stmt, nil
		default:
			return stmt, nil
		}
	}
}

func (p *parser) parseLoop(kw lexer.Token) (ast.Statement, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	t := p.next()
	if t.Kind == lexer.TokError {
		return nil, lexErr(t)
	}
	if t.Kind != lexer.TokWord {
		return nil, errExpected("a loop count", t)
	}
	n, err := strconv.Atoi(t.Val)
	if err != nil || n < 0 {
		return nil, SyntaxError{t.Line,
			fmt.Sprintf("Loop count must be a non-negative integer literal, not ‘%s’", t.Val)}
	}
	if err := p.endStmt(); err != nil {
		return nil, err
	}

	body, err := p.parseWordBody(opener{"PONDE", "ENDPONDE", kw.Line})
	if err != nil {
		return nil, err
	}
	return ast.Loop{Var: name, Count: n, Body: body, Line: kw.Line}, nil
}

func (p *parser) parseSection(kw lexer.Token) (ast.Statement, error) {
	label, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.endStmt(); err != nil {
		return nil, err
	}

	body, err := p.parseWordBody(opener{"FUWA", "MOCO", kw.Line})
	if err != nil {
		return nil, err
	}
	return ast.Section{Label: label, Body: body, Line: kw.Line}, nil
}

// parseBraceBody parses ‘{ … }’ immediately following a conditional
// opener.  The brace must sit on the same line as the opener.
func (p *parser) parseBraceBody(keyword string, line int) ([]ast.Statement, error) {
	t := p.next()
	if t.Kind != lexer.TokBcOpen {
		return nil, errExpected("‘{’", t)
	}

	o := opener{keyword, "}", line}
	p.blocks.Push(o)

	body := []ast.Statement{}
	for {
		p.skipEndStmts()
		switch t := p.peek(); t.Kind {
		case lexer.TokBcClose:
			p.next()
			p.blocks.Pop()
			return body, nil
		case lexer.TokEof:
			return nil, errUnclosed(o, t)
		}

		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
}

// parseWordBody parses statements up to a keyword closer (‘ENDPONDE’,
// ‘MOCO’) that must appear at the start of its own statement.
func (p *parser) parseWordBody(o opener) ([]ast.Statement, error) {
	p.blocks.Push(o)

	body := []ast.Statement{}
	for {
		p.skipEndStmts()
		t := p.peek()
		if t.Kind == lexer.TokWord && t.Val == o.closer {
			p.next()
			p.blocks.Pop()
			if err := p.endStmt(); err != nil {
				return nil, err
			}
			return body, nil
		}
		if t.Kind == lexer.TokEof {
			return nil, errUnclosed(o, t)
		}

		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
}

func (p *parser) parseValue() (ast.Value, error) {
	switch t := p.next(); t.Kind {
	case lexer.TokWord:
		return ast.Word(t.Val), nil
	case lexer.TokString:
		return ast.Text(t.Val), nil
	case lexer.TokError:
		return nil, lexErr(t)
	default:
		return nil, errExpected("a value", t)
	}
}

func (p *parser) parseName() (string, error) {
	t := p.next()
	if t.Kind == lexer.TokError {
		return "", lexErr(t)
	}
	if t.Kind != lexer.TokWord || !IsName(t.Val) {
		return "", errExpected("a variable name", t)
	}
	return t.Val, nil
}

func (p *parser) endStmt() error {
	switch t := p.peek(); t.Kind {
	case lexer.TokEndStmt:
		p.next()
		return nil
	case lexer.TokEof, lexer.TokBcClose:
		return nil
	case lexer.TokError:
		p.next()
		return lexErr(t)
	default:
		return errExpected("end of statement", t)
	}
}

func lexErr(t lexer.Token) error {
	return lexer.LexError{Line: t.Line, Msg: t.Val}
}
