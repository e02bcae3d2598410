package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalIn(t *testing.T, src string, env *environment) Value {
	t.Helper()
	if env == nil {
		env = newEnvironment(nil)
	}
	v, err := evalExpr(src, env)
	require.NoError(t, err)
	return v
}

func TestEvalArithmetic(t *testing.T) {
	for src, want := range map[string]Num{
		"5 * 111":    555,
		"2 + 3 * 4":  14,
		"10 - 2 - 3": 5,
		"5 / 2":      2.5,
		"7 % 3":      1,
		"5":          5,
		"-5 + 1":     -4,
		"1 - -2":     3,
		"2*3+1":      7,
	} {
		assert.Equalf(t, want, evalIn(t, src, nil), "eval(%q)", src)
	}
}

func TestEvalVariableReference(t *testing.T) {
	env := newEnvironment(nil)
	require.NoError(t, env.declare("num", Num(3)))

	assert.Equal(t, Num(4), evalIn(t, "$num + 1", env))
}

func TestEvalComparisons(t *testing.T) {
	env := newEnvironment(nil)
	require.NoError(t, env.declare("x", Num(5)))
	require.NoError(t, env.declare("s", String("bau")))
	require.NoError(t, env.declare("b", Bool(true)))

	for src, want := range map[string]Bool{
		"$x == 5":        true,
		"$x != 5":        false,
		"$x < 10":        true,
		"$x >= 5":        true,
		"$x + 1 > 5":     true,
		"$s == $s":       true,
		"$b == FLUFFY":   true,
		"$b != FUZZY":    true,
		"FLUFFY == FUZZY": false,
	} {
		assert.Equalf(t, want, evalIn(t, src, env), "eval(%q)", src)
	}
}

// Numeric equality is exact, so the usual floating point surprises
// apply: 0.1 + 0.2 is not 0.3.
func TestEvalFloatEqualityIsExact(t *testing.T) {
	assert.Equal(t, Bool(false), evalIn(t, "0.1 + 0.2 == 0.3", nil))
	assert.Equal(t, Bool(true), evalIn(t, "0.5 + 0.25 == 0.75", nil))
}

func TestEvalDivisionByZero(t *testing.T) {
	env := newEnvironment(nil)
	require.NoError(t, env.declare("x", Num(10)))

	_, err := evalExpr("$x / 0", env)
	var aerr ArithmeticError
	require.ErrorAs(t, err, &aerr)

	_, err = evalExpr("$x % 0", env)
	require.ErrorAs(t, err, &aerr)
}

func TestEvalUndeclaredReference(t *testing.T) {
	_, err := evalExpr("$ghost + 1", newEnvironment(nil))
	var nerr NameError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "ghost", nerr.Name)
}

func TestEvalTypeErrors(t *testing.T) {
	env := newEnvironment(nil)
	require.NoError(t, env.declare("s", String("bau")))
	require.NoError(t, env.declare("x", Num(1)))
	require.NoError(t, env.declare("b", Bool(true)))

	for _, src := range []string{
		"$s + 1",
		"$b * 2",
		"$s < $s",
		"$x == $s",
		"$b >= FUZZY",
	} {
		_, err := evalExpr(src, env)
		var terr TypeError
		assert.ErrorAsf(t, err, &terr, "eval(%q)", src)
	}
}

func TestEvalMalformed(t *testing.T) {
	env := newEnvironment(nil)
	require.NoError(t, env.declare("x", Num(1)))

	for _, src := range []string{
		"",
		"bareword",
		"$",
		"1 +",
		"* 2",
		"1 2",
		"= 1",
		"1 ! 2",
		"5..5 + 1",
	} {
		_, err := evalExpr(src, env)
		var eerr ExpressionError
		assert.ErrorAsf(t, err, &eerr, "eval(%q)", src)
	}
}
