package ast

// Program is a complete parsed script
type Program = []Statement

// Statement is any single BAUx2 statement.  Block-bearing variants own
// their child statements, forming the parsed program tree.
type Statement interface {
	isStatement()
}

// Print is the ‘BAU’ statement
type Print struct {
	Arg  Value
	Line int
}

// Declare is the ‘WA’ statement.  A variable is declared exactly once;
// its type never changes afterwards.
type Declare struct {
	Type Type
	Name string
	Arg  Value
	Line int
}

// Reassign is the ‘CO’ statement
type Reassign struct {
	Name string
	Arg  Value
	Line int
}

// If is a ‘PE’ chain with optional ‘ROPE’ continuations and an optional
// final ‘RO’ branch.  A nil Else means no ‘RO’ branch was written.
type If struct {
	Cond  Value
	Body  []Statement
	Elifs []Elif
	Else  []Statement
	Line  int
}

type Elif struct {
	Cond Value
	Body []Statement
	Line int
}

// Loop is a ‘PONDE … ENDPONDE’ block.  Var names an externally declared
// counter; the loop itself never increments it.
type Loop struct {
	Var   string
	Count int
	Body  []Statement
	Line  int
}

// Section is a ‘FUWA … MOCO’ block.  It only introduces a scope.
type Section struct {
	Label string
	Body  []Statement
	Line  int
}

// DebugMarker is the ‘CHIHUAHUA’ statement.  It is inert except as the
// first statement of a section, where it turns on class framing.
type DebugMarker struct {
	Line int
}

func (Print) isStatement()       {}
func (Declare) isStatement()     {}
func (Reassign) isStatement()    {}
func (If) isStatement()          {}
func (Loop) isStatement()        {}
func (Section) isStatement()     {}
func (DebugMarker) isStatement() {}

// Value is the unevaluated payload of a statement.  The contents of a
// Text are opaque until the executor decides, from context, whether they
// are literal text, an arithmetic expression, or a comparison.
type Value interface {
	isValue()
}

// Word is a bare token: a literal (number, FLUFFY, FUZZY) or a variable
// name.
type Word string

// Text is the contents of a double-quoted string, still unparsed.
type Text string

func (Word) isValue() {}
func (Text) isValue() {}
