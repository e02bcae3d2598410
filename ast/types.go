package ast

// Type is the declared type of a variable
type Type int

const (
	TypeString Type = iota // KIRA
	TypeBool               // BAULEAN
	TypeNum                // MOE
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "KIRA"
	case TypeBool:
		return "BAULEAN"
	case TypeNum:
		return "MOE"
	}
	panic("unreachable")
}

func TypeFromKeyword(s string) (Type, bool) {
	switch s {
	case "KIRA":
		return TypeString, true
	case "BAULEAN":
		return TypeBool, true
	case "MOE":
		return TypeNum, true
	}
	return 0, false
}
