package vm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MrEasybutton/BAUx2/ast"
	"github.com/MrEasybutton/BAUx2/lexer"
)

func (x *executor) execBody(body []ast.Statement) error {
	for _, s := range body {
		if err := x.execStatement(s); err != nil {
			return err
		}
	}
	return nil
}

func (x *executor) execStatement(s ast.Statement) error {
	switch s := s.(type) {
	case ast.Print:
		return wrap(s.Line, x.execPrint(s))
	case ast.Declare:
		return wrap(s.Line, x.execDeclare(s))
	case ast.Reassign:
		return wrap(s.Line, x.execReassign(s))
	case ast.If:
		return x.execIf(s)
	case ast.Loop:
		return x.execLoop(s)
	case ast.Section:
		return x.execSection(s)
	case ast.DebugMarker:
		return nil
	}
	panic("unreachable")
}

func wrap(line int, err error) error {
	if err != nil {
		return statementError{line, err}
	}
	return nil
}

func (x *executor) execPrint(s ast.Print) error {
	out, err := x.display(s.Arg)
	if err != nil {
		return err
	}
	x.println(out)
	return nil
}

func (x *executor) execDeclare(s ast.Declare) error {
	v, err := x.evalPayload(s.Type, s.Name, s.Arg)
	if err != nil {
		return err
	}
	return x.env.declare(s.Name, v)
}

func (x *executor) execReassign(s ast.Reassign) error {
	typ, err := x.env.typeOf(s.Name)
	if err != nil {
		return err
	}
	v, err := x.evalPayload(typ, s.Name, s.Arg)
	if err != nil {
		return err
	}
	return x.env.reassign(s.Name, v)
}

func (x *executor) execIf(s ast.If) error {
	ok, err := x.evalCond(s.Cond)
	if err != nil {
		return statementError{s.Line, err}
	}
	if ok {
		return x.execScoped(s.Body)
	}

	for _, elif := range s.Elifs {
		ok, err := x.evalCond(elif.Cond)
		if err != nil {
			return statementError{elif.Line, err}
		}
		if ok {
			return x.execScoped(elif.Body)
		}
	}

	if s.Else != nil {
		return x.execScoped(s.Else)
	}
	return nil
}

func (x *executor) execLoop(s ast.Loop) error {
	v, err := x.env.lookup(s.Var)
	if err != nil {
		return statementError{s.Line, err}
	}
	if v.Type() != ast.TypeNum {
		return statementError{s.Line, TypeError{
			fmt.Sprintf("Loop counter ‘%s’ must be of type MOE, not %s", s.Var, v.Type())}}
	}

	// The counter is never incremented here; that is the body’s job
	for i := 0; i < s.Count; i++ {
		if err := x.execScoped(s.Body); err != nil {
			return err
		}
	}
	return nil
}

func (x *executor) execSection(s ast.Section) error {
	framed := false
	if len(s.Body) > 0 {
		_, framed = s.Body[0].(ast.DebugMarker)
	}

	if framed {
		x.println("Class: " + s.Label)
	}
	if err := x.execScoped(s.Body); err != nil {
		return err
	}
	if framed {
		x.println("End class")
	}
	return nil
}

// execScoped runs a block body in a fresh child scope.  The scope is
// popped on every path out, error included.
func (x *executor) execScoped(body []ast.Statement) error {
	x.env = newEnvironment(x.env)
	err := x.execBody(body)
	x.env = x.env.parent
	return err
}

// evalPayload interprets a declaration or reassignment payload under the
// target’s declared type: quoted text is interpolated literal text for
// KIRA but an evaluated expression for BAULEAN and MOE.
func (x *executor) evalPayload(typ ast.Type, name string, arg ast.Value) (Value, error) {
	switch arg := arg.(type) {
	case ast.Text:
		if typ == ast.TypeString {
			s, err := x.interpolate(string(arg))
			if err != nil {
				return nil, err
			}
			return String(s), nil
		}
		v, err := evalExpr(string(arg), x.env)
		if err != nil {
			return nil, err
		}
		if v.Type() != typ {
			return nil, TypeMismatchError{name, typ, v.Type()}
		}
		return v, nil

	case ast.Word:
		v, err := x.resolveWord(string(arg))
		if err != nil {
			return nil, err
		}
		if v.Type() != typ {
			return nil, TypeMismatchError{name, typ, v.Type()}
		}
		return v, nil
	}
	panic("unreachable")
}

func (x *executor) evalCond(arg ast.Value) (bool, error) {
	var v Value
	var err error

	switch arg := arg.(type) {
	case ast.Text:
		v, err = evalExpr(string(arg), x.env)
	case ast.Word:
		v, err = x.resolveWord(string(arg))
	default:
		panic("unreachable")
	}
	if err != nil {
		return false, err
	}

	b, ok := v.(Bool)
	if !ok {
		return false, TypeError{
			fmt.Sprintf("Condition must be BAULEAN, not %s", v.Type())}
	}
	return bool(b), nil
}

// resolveWord turns a bare word into a value: a literal if it reads as
// one, otherwise a variable reference.
func (x *executor) resolveWord(w string) (Value, error) {
	if v, ok := literal(w); ok {
		return v, nil
	}
	return x.env.lookup(w)
}

func literal(w string) (Value, bool) {
	switch w {
	case "FLUFFY":
		return Bool(true), true
	case "FUZZY":
		return Bool(false), true
	}
	if n, err := strconv.ParseFloat(w, 64); err == nil {
		return Num(n), true
	}
	return nil, false
}

func (x *executor) display(arg ast.Value) (string, error) {
	switch arg := arg.(type) {
	case ast.Text:
		return x.interpolate(string(arg))
	case ast.Word:
		v, err := x.resolveWord(string(arg))
		if err != nil {
			return "", err
		}
		return render(v), nil
	}
	panic("unreachable")
}

// interpolate substitutes ‘$name’ references in literal text by direct
// lookup.  This is plain substitution, not expression evaluation.
func (x *executor) interpolate(s string) (string, error) {
	sb := strings.Builder{}
	rs := []rune(s)

	for i := 0; i < len(rs); {
		if rs[i] != '$' || i+1 >= len(rs) || !lexer.IsNameStart(rs[i+1]) {
			sb.WriteRune(rs[i])
			i++
			continue
		}

		j := i + 1
		for j < len(rs) && lexer.IsNameRune(rs[j]) {
			j++
		}
		v, err := x.env.lookup(string(rs[i+1 : j]))
		if err != nil {
			return "", err
		}
		sb.WriteString(render(v))
		i = j
	}

	return sb.String(), nil
}

func (x *executor) println(s string) {
	fmt.Fprintln(x.out, s)
}
