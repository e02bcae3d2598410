package parser

import (
	"github.com/MrEasybutton/BAUx2/ast"
	"github.com/MrEasybutton/BAUx2/lexer"
	"github.com/MrEasybutton/BAUx2/pkg/stack"
)

// Parse consumes the full token stream and returns the nested statement
// tree.  Block matching is validated here, before any execution, so
// structural errors surface up front rather than mid-run.
func Parse(toks <-chan lexer.Token) (ast.Program, error) {
	p := parser{toks: toks, blocks: stack.New[opener](4)}
	return p.parseProgram()
}

// opener records an unclosed block for diagnostics
type opener struct {
	keyword string // Keyword that opened the block (‘PE’, ‘PONDE’, …)
	closer  string // Token expected to close it
	line    int
}

type parser struct {
	toks   <-chan lexer.Token
	cache  *lexer.Token
	blocks stack.Stack[opener]
}

func (p *parser) next() lexer.Token {
	var t lexer.Token
	if p.cache != nil {
		t, p.cache = *p.cache, nil
	} else {
		t = <-p.toks
	}
	return t
}

func (p *parser) peek() lexer.Token {
	if p.cache == nil {
		t := <-p.toks
		p.cache = &t
	}
	return *p.cache
}

// skipEndStmts discards blank statements between real ones
func (p *parser) skipEndStmts() {
	for p.peek().Kind == lexer.TokEndStmt {
		p.next()
	}
}
