package vm

import (
	"io"

	"github.com/MrEasybutton/BAUx2/ast"
)

// Run walks the program tree once, depth-first, writing output lines to
// out as they are produced.  The first fault aborts the run and is
// returned; output written before the fault remains.  A program is
// executed at most once and the environment dies with the run.
func Run(prog ast.Program, out io.Writer) error {
	x := &executor{out: out, env: newEnvironment(nil)}
	return x.execBody(prog)
}

type executor struct {
	out io.Writer
	env *environment
}
