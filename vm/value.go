package vm

import (
	"strconv"

	"github.com/MrEasybutton/BAUx2/ast"
)

// Value is a runtime scalar: one of the three BAUx2 variants.  A
// variable keeps the variant it was declared with for its whole life.
type Value interface {
	Type() ast.Type
	isValue()
}

type String string
type Bool bool
type Num float64

func (String) Type() ast.Type { return ast.TypeString }
func (Bool) Type() ast.Type   { return ast.TypeBool }
func (Num) Type() ast.Type    { return ast.TypeNum }

func (String) isValue() {}
func (Bool) isValue()   {}
func (Num) isValue()    {}

// render produces the canonical printed form of a value.  Integral
// numbers print without a fractional part, so ‘555’ rather than ‘555.0’.
func render(v Value) string {
	switch v := v.(type) {
	case String:
		return string(v)
	case Bool:
		return strconv.FormatBool(bool(v))
	case Num:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	}
	panic("unreachable")
}
