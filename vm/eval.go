package vm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/MrEasybutton/BAUx2/lexer"
)

// The contents of a quoted payload form a tiny expression language of
// their own: numeric literals, ‘$name’ references, FLUFFY/FUZZY, the
// arithmetic operators, and a single comparison at the lowest
// precedence level.

type exprKind int

const (
	exprNum exprKind = iota
	exprRef
	exprBool
	exprOp
)

type exprTok struct {
	kind exprKind
	text string
}

func scanExpr(src string) ([]exprTok, error) {
	toks := []exprTok{}
	rs := []rune(src)

	for i := 0; i < len(rs); {
		switch r := rs[i]; {
		case unicode.IsSpace(r):
			i++
		case r == '$':
			j := i + 1
			for j < len(rs) && lexer.IsNameRune(rs[j]) {
				j++
			}
			if j == i+1 {
				return nil, ExpressionError{"Expected a variable name after ‘$’"}
			}
			toks = append(toks, exprTok{exprRef, string(rs[i+1 : j])})
			i = j
		case unicode.IsDigit(r) || r == '.':
			j := i
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			toks = append(toks, exprTok{exprNum, string(rs[i:j])})
			i = j
		case r == '=' || r == '!':
			if i+1 >= len(rs) || rs[i+1] != '=' {
				return nil, ExpressionError{fmt.Sprintf("Invalid operator ‘%c’", r)}
			}
			toks = append(toks, exprTok{exprOp, string(rs[i : i+2])})
			i += 2
		case r == '<' || r == '>':
			if i+1 < len(rs) && rs[i+1] == '=' {
				toks = append(toks, exprTok{exprOp, string(rs[i : i+2])})
				i += 2
			} else {
				toks = append(toks, exprTok{exprOp, string(r)})
				i++
			}
		case strings.ContainsRune("+-*/%", r):
			toks = append(toks, exprTok{exprOp, string(r)})
			i++
		case lexer.IsNameStart(r):
			j := i
			for j < len(rs) && lexer.IsNameRune(rs[j]) {
				j++
			}
			w := string(rs[i:j])
			if w != "FLUFFY" && w != "FUZZY" {
				return nil, ExpressionError{
					fmt.Sprintf("‘%s’ is not a valid operand; variables are written ‘$name’", w)}
			}
			toks = append(toks, exprTok{exprBool, w})
			i = j
		default:
			return nil, ExpressionError{fmt.Sprintf("Invalid character ‘%c’ in expression", r)}
		}
	}

	return toks, nil
}

type evaluator struct {
	toks []exprTok
	pos  int
	env  *environment
}

func evalExpr(src string, env *environment) (Value, error) {
	toks, err := scanExpr(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ExpressionError{"Empty expression"}
	}

	e := evaluator{toks: toks, env: env}
	v, err := e.comparison()
	if err != nil {
		return nil, err
	}
	if e.pos != len(e.toks) {
		return nil, ExpressionError{
			fmt.Sprintf("Unexpected ‘%s’ after expression", e.toks[e.pos].text)}
	}
	return v, nil
}

func (e *evaluator) peekOp() (string, bool) {
	if e.pos < len(e.toks) && e.toks[e.pos].kind == exprOp {
		return e.toks[e.pos].text, true
	}
	return "", false
}

func (e *evaluator) comparison() (Value, error) {
	lhs, err := e.sum()
	if err != nil {
		return nil, err
	}

	op, ok := e.peekOp()
	if !ok || !isCmpOp(op) {
		return lhs, nil
	}
	e.pos++

	rhs, err := e.sum()
	if err != nil {
		return nil, err
	}
	return compare(op, lhs, rhs)
}

func (e *evaluator) sum() (Value, error) {
	lhs, err := e.term()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := e.peekOp()
		if !ok || op != "+" && op != "-" {
			return lhs, nil
		}
		e.pos++

		rhs, err := e.term()
		if err != nil {
			return nil, err
		}
		l, r, err := numericPair(op, lhs, rhs)
		if err != nil {
			return nil, err
		}

		if op == "+" {
			lhs = Num(l + r)
		} else {
			lhs = Num(l - r)
		}
	}
}

func (e *evaluator) term() (Value, error) {
	lhs, err := e.unary()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := e.peekOp()
		if !ok || op != "*" && op != "/" && op != "%" {
			return lhs, nil
		}
		e.pos++

		rhs, err := e.unary()
		if err != nil {
			return nil, err
		}
		l, r, err := numericPair(op, lhs, rhs)
		if err != nil {
			return nil, err
		}

		switch op {
		case "*":
			lhs = Num(l * r)
		case "/":
			if r == 0 {
				return nil, ArithmeticError{"Division by zero"}
			}
			lhs = Num(l / r)
		case "%":
			if r == 0 {
				return nil, ArithmeticError{"Modulo by zero"}
			}
			lhs = Num(math.Mod(l, r))
		}
	}
}

func (e *evaluator) unary() (Value, error) {
	if op, ok := e.peekOp(); ok && op == "-" {
		e.pos++
		v, err := e.unary()
		if err != nil {
			return nil, err
		}
		n, ok := v.(Num)
		if !ok {
			return nil, TypeError{
				fmt.Sprintf("Operator ‘-’ requires a MOE operand, not %s", v.Type())}
		}
		return Num(-n), nil
	}
	return e.primary()
}

func (e *evaluator) primary() (Value, error) {
	if e.pos >= len(e.toks) {
		return nil, ExpressionError{"Expression ended unexpectedly"}
	}

	t := e.toks[e.pos]
	e.pos++

	switch t.kind {
	case exprNum:
		n, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, ExpressionError{fmt.Sprintf("‘%s’ is not a valid number", t.text)}
		}
		return Num(n), nil
	case exprRef:
		return e.env.lookup(t.text)
	case exprBool:
		return Bool(t.text == "FLUFFY"), nil
	}

	return nil, ExpressionError{fmt.Sprintf("Expected an operand but got ‘%s’", t.text)}
}

func isCmpOp(op string) bool {
	switch op {
	case "==", "!=", "<", ">", "<=", ">=":
		return true
	}
	return false
}

func numericPair(op string, lhs, rhs Value) (float64, float64, error) {
	l, ok := lhs.(Num)
	if !ok {
		return 0, 0, TypeError{
			fmt.Sprintf("Operator ‘%s’ requires MOE operands, not %s", op, lhs.Type())}
	}
	r, ok := rhs.(Num)
	if !ok {
		return 0, 0, TypeError{
			fmt.Sprintf("Operator ‘%s’ requires MOE operands, not %s", op, rhs.Type())}
	}
	return float64(l), float64(r), nil
}

// compare applies a comparison operator.  Operands must share a variant;
// ordering additionally requires numbers.  Numeric equality is exact.
func compare(op string, lhs, rhs Value) (Value, error) {
	if lhs.Type() != rhs.Type() {
		return nil, TypeError{
			fmt.Sprintf("Cannot compare %s with %s", lhs.Type(), rhs.Type())}
	}

	switch op {
	case "==":
		return Bool(lhs == rhs), nil
	case "!=":
		return Bool(lhs != rhs), nil
	}

	l, lok := lhs.(Num)
	r, rok := rhs.(Num)
	if !lok || !rok {
		return nil, TypeError{
			fmt.Sprintf("Operator ‘%s’ requires MOE operands, not %s", op, lhs.Type())}
	}

	switch op {
	case "<":
		return Bool(l < r), nil
	case ">":
		return Bool(l > r), nil
	case "<=":
		return Bool(l <= r), nil
	case ">=":
		return Bool(l >= r), nil
	}

	panic("unreachable")
}
